// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the template catalog query service: concurrent
// loading of categories and templates, an optional Redis snapshot cache,
// and in-memory filtering by category slug and free-text search.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"studioportal/internal/cache"
	"studioportal/internal/models"
	"studioportal/internal/store"
)

// Snapshot holds the catalog as served to clients: active categories ordered
// by sort_order and active templates joined with their category.
type Snapshot struct {
	Categories []models.Category `json:"categories"`
	Templates  []models.Template `json:"templates"`
}

// Service loads and filters the template catalog.
type Service struct {
	categories *store.CategoryStore
	templates  *store.TemplateStore
	cache      *cache.CatalogCache // nil disables caching
}

// New returns a catalog service. The cache may be nil, in which case every
// Load hits the database.
func New(categories *store.CategoryStore, templates *store.TemplateStore, cc *cache.CatalogCache) *Service {
	return &Service{categories: categories, templates: templates, cache: cc}
}

// Load fetches active categories and active templates concurrently. The two
// fetches are independent: a failure in one does not cancel the other, and
// whatever succeeded is returned alongside the error. A fully successful
// snapshot is stored in the cache.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx); ok {
			var snap Snapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap, nil
			}
			// A corrupt cache entry falls through to a fresh load.
			s.cache.Invalidate(ctx)
		}
	}

	var snap Snapshot

	// Plain errgroup, not WithContext: the fetches must not cancel each other.
	// Each goroutine records its own error so that when both fail, the
	// template fetch's error is the one reported.
	var g errgroup.Group
	var catErr, tmplErr error
	g.Go(func() error {
		cats, err := s.categories.ListActive()
		if err != nil {
			catErr = err
			return err
		}
		snap.Categories = cats
		return nil
	})
	g.Go(func() error {
		tmpls, err := s.templates.ListActive()
		if err != nil {
			tmplErr = err
			return err
		}
		snap.Templates = tmpls
		return nil
	})

	if err := g.Wait(); err != nil {
		loadErr := catErr
		if tmplErr != nil {
			loadErr = tmplErr
		}
		slog.Error("catalog load failed", "error", loadErr)
		return &snap, loadErr
	}

	if s.cache != nil {
		if raw, mErr := json.Marshal(&snap); mErr == nil {
			s.cache.Set(ctx, raw)
		}
	}
	return &snap, nil
}

// TemplateBySlug returns one active template with its category attached,
// for the marketing site's template detail page. Returns nil when the slug
// is unknown or the template is inactive.
func (s *Service) TemplateBySlug(slug string) (*models.Template, error) {
	t, err := s.templates.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if t == nil || !t.Active {
		return nil, nil
	}

	cat, err := s.categories.FindByID(t.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat != nil && cat.Active {
		t.Category = cat
	}
	return t, nil
}

// CategoryBySlug returns one active category for the category landing page.
// Returns nil when the slug is unknown or the category is inactive.
func (s *Service) CategoryBySlug(slug string) (*models.Category, error) {
	c, err := s.categories.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.Active {
		return nil, nil
	}
	return c, nil
}

// Invalidate drops the cached snapshot. Called after the catalog seed runs
// or an admin changes catalog rows.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
