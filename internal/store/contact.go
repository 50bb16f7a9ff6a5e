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

// ContactStore manages inbound contact submissions.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore returns a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

const contactColumns = `id, name, email, company, subject, message, status, notes, created_at, updated_at`

// scanContact scans a row into a ContactSubmission struct.
func scanContact(scanner interface{ Scan(...any) error }) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Email, &c.Company, &c.Subject, &c.Message,
		&c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contact submissions, newest first.
func (s *ContactStore) List() ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`SELECT ` + contactColumns + ` FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var items []models.ContactSubmission
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a submission by ID. Returns nil if not found.
func (s *ContactStore) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	row := s.db.QueryRow(`SELECT `+contactColumns+` FROM contact_submissions WHERE id = $1`, id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact submission by id: %w", err)
	}
	return c, nil
}

// Create records a new submission from the public contact form.
func (s *ContactStore) Create(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	row := s.db.QueryRow(`
		INSERT INTO contact_submissions (name, email, company, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+contactColumns,
		c.Name, c.Email, c.Company, c.Subject, c.Message, models.ContactNew,
	)
	result, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return result, nil
}

// UpdateStatus sets only the status field and returns the patched
// submission. Returns nil if it no longer exists.
func (s *ContactStore) UpdateStatus(id uuid.UUID, status models.ContactStatus) (*models.ContactSubmission, error) {
	row := s.db.QueryRow(`
		UPDATE contact_submissions SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns,
		status, id,
	)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return c, nil
}

// UpdateNotes sets only the notes field. A nil value clears the notes.
// Returns the patched submission, or nil if it no longer exists.
func (s *ContactStore) UpdateNotes(id uuid.UUID, notes *string) (*models.ContactSubmission, error) {
	row := s.db.QueryRow(`
		UPDATE contact_submissions SET notes = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+contactColumns,
		notes, id,
	)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update contact notes: %w", err)
	}
	return c, nil
}
