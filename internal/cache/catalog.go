// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Redis-backed cache for the serialized template
// catalog snapshot. The catalog is read-mostly, so cached snapshots let
// public catalog requests skip the two database queries entirely.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogKey is the Redis key holding the serialized catalog snapshot.
	catalogKey = "catalog:snapshot"

	// DefaultCatalogTTL is how long a catalog snapshot stays cached.
	DefaultCatalogTTL = 5 * time.Minute
)

// CatalogCache stores the serialized catalog snapshot in Redis.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache backed by the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get retrieves the cached snapshot. Returns false on miss or error.
func (cc *CatalogCache) Get(ctx context.Context) ([]byte, bool) {
	val, err := cc.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "error", err)
		return nil, false
	}
	slog.Debug("catalog cache hit")
	return val, true
}

// Set stores a serialized snapshot with the configured TTL.
func (cc *CatalogCache) Set(ctx context.Context, snapshot []byte) {
	if err := cc.client.Set(ctx, catalogKey, snapshot, cc.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "error", err)
	}
}

// Invalidate removes the cached snapshot. Called after the catalog seed
// runs or an admin changes catalog rows.
func (cc *CatalogCache) Invalidate(ctx context.Context) {
	if err := cc.client.Del(ctx, catalogKey).Err(); err != nil {
		slog.Warn("catalog cache invalidate error", "error", err)
	}
	slog.Debug("catalog cache invalidated")
}
