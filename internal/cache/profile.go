// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// profile.go caches serialized profiles keyed by id. Every authenticated
// portal request resolves the token subject to a profile, so this keeps
// the hot lookup off the database.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"studioportal/internal/models"
)

// DefaultProfileTTL is how long a cached profile stays valid.
const DefaultProfileTTL = 10 * time.Minute

// ProfileCache stores serialized profiles in Redis keyed by profile id.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a profile cache backed by the given Redis client.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl == 0 {
		ttl = DefaultProfileTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func profileKey(id uuid.UUID) string {
	return "profile:" + id.String()
}

// Get retrieves a cached profile. Returns nil on miss or error.
func (pc *ProfileCache) Get(ctx context.Context, id uuid.UUID) *models.Profile {
	val, err := pc.client.Get(ctx, profileKey(id)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("profile cache get error", "error", err)
		return nil
	}
	var p models.Profile
	if err := json.Unmarshal(val, &p); err != nil {
		slog.Warn("profile cache decode error", "error", err)
		return nil
	}
	return &p
}

// Set stores a profile with the configured TTL.
func (pc *ProfileCache) Set(ctx context.Context, p *models.Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := pc.client.Set(ctx, profileKey(p.ID), raw, pc.ttl).Err(); err != nil {
		slog.Warn("profile cache set error", "error", err)
	}
}

// Invalidate removes a cached profile after it changes.
func (pc *ProfileCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := pc.client.Del(ctx, profileKey(id)).Err(); err != nil {
		slog.Warn("profile cache invalidate error", "error", err)
	}
}
