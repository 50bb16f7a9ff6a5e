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

// ProfileStore manages portal user profiles.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore returns a new ProfileStore.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

const profileColumns = `id, name, email, company, phone, country, role, created_at, updated_at`

// scanProfile scans a row into a Profile struct.
func scanProfile(scanner interface{ Scan(...any) error }) (*models.Profile, error) {
	var p models.Profile
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Email, &p.Company, &p.Phone, &p.Country,
		&p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all profiles ordered by name. Used by the admin console's
// client selector.
func (s *ProfileStore) List() ([]models.Profile, error) {
	rows, err := s.db.Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var items []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a profile by ID. Returns nil if not found.
func (s *ProfileStore) FindByID(id uuid.UUID) (*models.Profile, error) {
	row := s.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return p, nil
}

// FindByEmail retrieves a profile by email. Returns nil if not found.
func (s *ProfileStore) FindByEmail(email string) (*models.Profile, error) {
	row := s.db.QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by email: %w", err)
	}
	return p, nil
}

// Upsert inserts or updates a profile keyed by email. Used when syncing
// identities from the hosted auth provider.
func (s *ProfileStore) Upsert(p *models.Profile) (*models.Profile, error) {
	row := s.db.QueryRow(`
		INSERT INTO profiles (name, email, company, phone, country, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email)
		DO UPDATE SET name = EXCLUDED.name, company = EXCLUDED.company,
		              phone = EXCLUDED.phone, country = EXCLUDED.country,
		              updated_at = NOW()
		RETURNING `+profileColumns,
		p.Name, p.Email, p.Company, p.Phone, p.Country, p.Role,
	)
	result, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return result, nil
}
