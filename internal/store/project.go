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

// ProjectStore manages client projects.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a new ProjectStore.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, name, description, status, tier, client_id, url, start_date, end_date, notes, created_at, updated_at`

// scanProject scans a project row without joined client fields.
func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.Tier, &p.ClientID,
		&p.URL, &p.StartDate, &p.EndDate, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects joined with client name and email, most
// recently updated first.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT pr.id, pr.name, pr.description, pr.status, pr.tier, pr.client_id,
		       pr.url, pr.start_date, pr.end_date, pr.notes, pr.created_at,
		       pr.updated_at, p.name, p.email
		FROM projects pr
		JOIN profiles p ON p.id = pr.client_id
		ORDER BY pr.updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Status, &p.Tier, &p.ClientID,
			&p.URL, &p.StartDate, &p.EndDate, &p.Notes, &p.CreatedAt,
			&p.UpdatedAt, &p.ClientName, &p.ClientEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// ListByClient returns a client's projects, most recently updated first.
func (s *ProjectStore) ListByClient(clientID uuid.UUID) ([]models.Project, error) {
	rows, err := s.db.Query(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE client_id = $1
		ORDER BY updated_at DESC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list projects by client: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project by ID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (name, description, status, tier, client_id, url, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+projectColumns,
		p.Name, p.Description, p.Status, p.Tier, p.ClientID,
		p.URL, p.StartDate, p.EndDate, p.Notes,
	)
	result, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// UpdateStatus sets only the status field and returns the patched project.
// Returns nil if no project with that ID exists.
func (s *ProjectStore) UpdateStatus(id uuid.UUID, status models.WorkStatus) (*models.Project, error) {
	row := s.db.QueryRow(`
		UPDATE projects SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+projectColumns,
		status, id,
	)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project status: %w", err)
	}
	return p, nil
}

// Delete removes a project by ID. The deletion is irreversible; callers are
// responsible for obtaining explicit confirmation first.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
