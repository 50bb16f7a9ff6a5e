// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package console

import (
	"fmt"

	"github.com/google/uuid"

	"studioportal/internal/dates"
	"studioportal/internal/models"
)

// CampaignDraft carries every editable campaign field as entered in the
// console editor. Dates arrive as raw strings and are normalized to UTC
// instants (or NULL) before the update is sent.
type CampaignDraft struct {
	Template      string                   `json:"template"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	DiscountType  models.DiscountType      `json:"discount_type"`
	DiscountValue float64                  `json:"discount_value"`
	DiscountCode  *string                  `json:"discount_code"`
	BannerText    string                   `json:"banner_text"`
	BannerColor   string                   `json:"banner_color"`
	CTAText       string                   `json:"cta_text"`
	CTALink       string                   `json:"cta_link"`
	Placement     models.CampaignPlacement `json:"placement"`
	Active        bool                     `json:"active"`
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
}

// ListCampaigns returns every campaign for the console grid.
func (c *Console) ListCampaigns() ([]models.Campaign, error) {
	return c.campaigns.List()
}

// FindCampaign returns one campaign for the console's editor.
func (c *Console) FindCampaign(id uuid.UUID) (*models.Campaign, error) {
	campaign, err := c.campaigns.FindByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}
	return campaign, nil
}

// SaveCampaign pushes every editable field of the draft in a single update.
// Drafts are not auto-saved: this is the only path that persists editor
// changes. It is independent of ToggleCampaign: toggling while a draft is
// pending will not carry the unsaved edits.
func (c *Console) SaveCampaign(id uuid.UUID, draft CampaignDraft) (*models.Campaign, error) {
	start, err := dates.Parse(draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("campaign start date: %w", err)
	}
	end, err := dates.Parse(draft.EndDate)
	if err != nil {
		return nil, fmt.Errorf("campaign end date: %w", err)
	}

	updated, err := c.campaigns.Update(&models.Campaign{
		ID:            id,
		Template:      draft.Template,
		Title:         draft.Title,
		Description:   draft.Description,
		DiscountType:  draft.DiscountType,
		DiscountValue: draft.DiscountValue,
		DiscountCode:  draft.DiscountCode,
		BannerText:    draft.BannerText,
		BannerColor:   draft.BannerColor,
		CTAText:       draft.CTAText,
		CTALink:       draft.CTALink,
		Placement:     draft.Placement,
		Active:        draft.Active,
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// CreateCampaign inserts a new campaign from a draft.
func (c *Console) CreateCampaign(draft CampaignDraft) (*models.Campaign, error) {
	start, err := dates.Parse(draft.StartDate)
	if err != nil {
		return nil, fmt.Errorf("campaign start date: %w", err)
	}
	end, err := dates.Parse(draft.EndDate)
	if err != nil {
		return nil, fmt.Errorf("campaign end date: %w", err)
	}

	return c.campaigns.Create(&models.Campaign{
		Template:      draft.Template,
		Title:         draft.Title,
		Description:   draft.Description,
		DiscountType:  draft.DiscountType,
		DiscountValue: draft.DiscountValue,
		DiscountCode:  draft.DiscountCode,
		BannerText:    draft.BannerText,
		BannerColor:   draft.BannerColor,
		CTAText:       draft.CTAText,
		CTALink:       draft.CTALink,
		Placement:     draft.Placement,
		Active:        draft.Active,
		StartDate:     start,
		EndDate:       end,
	})
}

// ToggleCampaign flips only the active flag of one campaign, leaving every
// other campaign and every other field of this campaign untouched.
func (c *Console) ToggleCampaign(id uuid.UUID, active bool) (*models.Campaign, error) {
	updated, err := c.campaigns.SetActive(id, active)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}
