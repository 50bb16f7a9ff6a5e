// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType is how a campaign discount is expressed.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// CampaignPlacement is where on the site a campaign is displayed.
type CampaignPlacement string

const (
	PlacementBanner  CampaignPlacement = "banner"
	PlacementHero    CampaignPlacement = "hero"
	PlacementPopup   CampaignPlacement = "popup"
	PlacementPricing CampaignPlacement = "pricing"
)

// Campaign is a marketing promotion managed from the admin console.
// Multiple campaigns may be active at once; Active is toggled per campaign
// with no mutual-exclusivity rule.
type Campaign struct {
	ID            uuid.UUID         `json:"id"`
	Template      string            `json:"template"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	DiscountType  DiscountType      `json:"discount_type"`
	DiscountValue float64           `json:"discount_value"`
	DiscountCode  *string           `json:"discount_code,omitempty"`
	BannerText    string            `json:"banner_text"`
	BannerColor   string            `json:"banner_color"`
	CTAText       string            `json:"cta_text"`
	CTALink       string            `json:"cta_link"`
	Placement     CampaignPlacement `json:"placement"`
	Active        bool              `json:"active"`
	StartDate     *time.Time        `json:"start_date,omitempty"`
	EndDate       *time.Time        `json:"end_date,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
