// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

// TemplateStore manages catalog templates.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore returns a new TemplateStore.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

const templateColumns = `t.id, t.slug, t.name, t.category_id, t.description, t.pages_included,
	t.tier_compatibility, t.popular, t.features, t.thumbnail_url, t.preview_url,
	t.preview_images, t.sort_order, t.active, t.created_at, t.updated_at`

// scanTemplate scans a template row, decoding the JSONB list columns.
func scanTemplate(scanner interface{ Scan(...any) error }) (*models.Template, error) {
	var t models.Template
	var tiers, features, previews []byte
	err := scanner.Scan(
		&t.ID, &t.Slug, &t.Name, &t.CategoryID, &t.Description, &t.PagesIncluded,
		&tiers, &t.Popular, &features, &t.ThumbnailURL, &t.PreviewURL,
		&previews, &t.SortOrder, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tiers, &t.TierCompatibility); err != nil {
		return nil, fmt.Errorf("decode tier_compatibility: %w", err)
	}
	if err := json.Unmarshal(features, &t.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	if err := json.Unmarshal(previews, &t.PreviewImages); err != nil {
		return nil, fmt.Errorf("decode preview_images: %w", err)
	}
	return &t, nil
}

// ListActive returns all active templates joined with their active category,
// ordered by sort_order. Templates whose category is missing or inactive are
// still returned, with a nil Category.
func (s *TemplateStore) ListActive() ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT ` + templateColumns + `,
		       c.id, c.slug, c.name, c.description, c.icon, c.color,
		       c.sort_order, c.active, c.created_at, c.updated_at
		FROM templates t
		LEFT JOIN template_categories c ON c.id = t.category_id AND c.active = TRUE
		WHERE t.active = TRUE
		ORDER BY t.sort_order, t.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list active templates: %w", err)
	}
	defer rows.Close()

	var items []models.Template
	for rows.Next() {
		var t models.Template
		var tiers, features, previews []byte
		var cID, cSlug, cName, cDesc, cIcon, cColor sql.NullString
		var cSort sql.NullInt64
		var cActive sql.NullBool
		var cCreated, cUpdated sql.NullTime

		err := rows.Scan(
			&t.ID, &t.Slug, &t.Name, &t.CategoryID, &t.Description, &t.PagesIncluded,
			&tiers, &t.Popular, &features, &t.ThumbnailURL, &t.PreviewURL,
			&previews, &t.SortOrder, &t.Active, &t.CreatedAt, &t.UpdatedAt,
			&cID, &cSlug, &cName, &cDesc, &cIcon, &cColor,
			&cSort, &cActive, &cCreated, &cUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		if err := json.Unmarshal(tiers, &t.TierCompatibility); err != nil {
			return nil, fmt.Errorf("decode tier_compatibility: %w", err)
		}
		if err := json.Unmarshal(features, &t.Features); err != nil {
			return nil, fmt.Errorf("decode features: %w", err)
		}
		if err := json.Unmarshal(previews, &t.PreviewImages); err != nil {
			return nil, fmt.Errorf("decode preview_images: %w", err)
		}

		if cID.Valid {
			id, err := uuid.Parse(cID.String)
			if err != nil {
				return nil, fmt.Errorf("parse category id: %w", err)
			}
			t.Category = &models.Category{
				ID:          id,
				Slug:        cSlug.String,
				Name:        cName.String,
				Description: cDesc.String,
				Icon:        cIcon.String,
				Color:       cColor.String,
				SortOrder:   int(cSort.Int64),
				Active:      cActive.Bool,
				CreatedAt:   cCreated.Time,
				UpdatedAt:   cUpdated.Time,
			}
		}

		items = append(items, t)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a template by its unique slug. Returns nil if not found.
func (s *TemplateStore) FindBySlug(slug string) (*models.Template, error) {
	row := s.db.QueryRow(`
		SELECT `+templateColumns+` FROM templates t WHERE t.slug = $1
	`, slug)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by slug: %w", err)
	}
	return t, nil
}

// FindByID retrieves a template by ID. Returns nil if not found.
func (s *TemplateStore) FindByID(id uuid.UUID) (*models.Template, error) {
	row := s.db.QueryRow(`
		SELECT `+templateColumns+` FROM templates t WHERE t.id = $1
	`, id)
	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// SetActive flips only the active flag of a template.
func (s *TemplateStore) SetActive(id uuid.UUID, active bool) error {
	_, err := s.db.Exec(`
		UPDATE templates SET active = $1, updated_at = NOW() WHERE id = $2
	`, active, id)
	if err != nil {
		return fmt.Errorf("set template active: %w", err)
	}
	return nil
}

// Count returns the number of templates in the catalog.
func (s *TemplateStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}
