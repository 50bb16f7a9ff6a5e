// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tier names the service tiers a template can be delivered under.
type Tier string

const (
	TierLaunch   Tier = "Launch"
	TierGrowth   Tier = "Growth"
	TierScale    Tier = "Scale"
	TierCommerce Tier = "Commerce"
)

// Template is a purchasable website template in the catalog.
// TierCompatibility, Features, and PreviewImages are stored as JSONB.
type Template struct {
	ID                uuid.UUID `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	CategoryID        uuid.UUID `json:"category_id"`
	Description       string    `json:"description"`
	PagesIncluded     int       `json:"pages_included"`
	TierCompatibility []Tier    `json:"tier_compatibility"`
	Popular           bool      `json:"popular"`
	Features          []string  `json:"features"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	PreviewURL        string    `json:"preview_url"`
	PreviewImages     []string  `json:"preview_images"`
	SortOrder         int       `json:"sort_order"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Category is populated by the joined catalog query. It is nil when the
	// referenced category no longer exists or is inactive.
	Category *Category `json:"category,omitempty"`
}
