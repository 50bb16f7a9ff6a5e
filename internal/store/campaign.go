// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

// CampaignStore manages marketing campaigns. The full-draft Update and the
// single-field SetActive are deliberately independent write paths; see the
// console package for how they are used.
type CampaignStore struct {
	db *sql.DB
}

// NewCampaignStore returns a new CampaignStore.
func NewCampaignStore(db *sql.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

const campaignColumns = `id, template, title, description, discount_type, discount_value, discount_code,
	banner_text, banner_color, cta_text, cta_link, placement, active, start_date, end_date, created_at, updated_at`

// scanCampaign scans a row into a Campaign struct.
func scanCampaign(scanner interface{ Scan(...any) error }) (*models.Campaign, error) {
	var c models.Campaign
	err := scanner.Scan(
		&c.ID, &c.Template, &c.Title, &c.Description, &c.DiscountType,
		&c.DiscountValue, &c.DiscountCode, &c.BannerText, &c.BannerColor,
		&c.CTAText, &c.CTALink, &c.Placement, &c.Active, &c.StartDate,
		&c.EndDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all campaigns, newest first.
func (s *CampaignStore) List() ([]models.Campaign, error) {
	rows, err := s.db.Query(`SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var items []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListActivePlacements returns active campaigns for the public site.
func (s *CampaignStore) ListActivePlacements() ([]models.Campaign, error) {
	rows, err := s.db.Query(`
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE active = TRUE
		  AND (start_date IS NULL OR start_date <= NOW())
		  AND (end_date IS NULL OR end_date >= NOW())
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	defer rows.Close()

	var items []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a campaign by ID. Returns nil if not found.
func (s *CampaignStore) FindByID(id uuid.UUID) (*models.Campaign, error) {
	row := s.db.QueryRow(`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find campaign by id: %w", err)
	}
	return c, nil
}

// Create inserts a new campaign and returns it.
func (s *CampaignStore) Create(c *models.Campaign) (*models.Campaign, error) {
	row := s.db.QueryRow(`
		INSERT INTO campaigns (template, title, description, discount_type, discount_value,
		                       discount_code, banner_text, banner_color, cta_text, cta_link,
		                       placement, active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+campaignColumns,
		c.Template, c.Title, c.Description, c.DiscountType, c.DiscountValue,
		c.DiscountCode, c.BannerText, c.BannerColor, c.CTAText, c.CTALink,
		c.Placement, c.Active, c.StartDate, c.EndDate,
	)
	result, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return result, nil
}

// Update pushes every editable draft field in a single statement and
// returns the updated campaign. Returns nil if the campaign is gone.
func (s *CampaignStore) Update(c *models.Campaign) (*models.Campaign, error) {
	row := s.db.QueryRow(`
		UPDATE campaigns SET
			template = $1, title = $2, description = $3, discount_type = $4,
			discount_value = $5, discount_code = $6, banner_text = $7,
			banner_color = $8, cta_text = $9, cta_link = $10, placement = $11,
			active = $12, start_date = $13, end_date = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING `+campaignColumns,
		c.Template, c.Title, c.Description, c.DiscountType, c.DiscountValue,
		c.DiscountCode, c.BannerText, c.BannerColor, c.CTAText, c.CTALink,
		c.Placement, c.Active, c.StartDate, c.EndDate, c.ID,
	)
	result, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return result, nil
}

// SetActive flips only the active flag, leaving every other field alone.
// Returns the patched campaign, or nil if it no longer exists.
func (s *CampaignStore) SetActive(id uuid.UUID, active bool) (*models.Campaign, error) {
	row := s.db.QueryRow(`
		UPDATE campaigns SET active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+campaignColumns,
		active, id,
	)
	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set campaign active: %w", err)
	}
	return c, nil
}
