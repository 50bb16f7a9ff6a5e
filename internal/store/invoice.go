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

// InvoiceStore manages client invoices. Revenue figures are derived from
// invoice rows on demand, never stored.
type InvoiceStore struct {
	db *sql.DB
}

// NewInvoiceStore returns a new InvoiceStore.
func NewInvoiceStore(db *sql.DB) *InvoiceStore {
	return &InvoiceStore{db: db}
}

const invoiceColumns = `id, invoice_number, amount, currency, status, description, due_date, paid_date, client_id, project_id, created_at, updated_at`

// scanInvoice scans an invoice row without joined client fields.
func scanInvoice(scanner interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	err := scanner.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.Amount, &inv.Currency, &inv.Status,
		&inv.Description, &inv.DueDate, &inv.PaidDate, &inv.ClientID,
		&inv.ProjectID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// List returns all invoices joined with client name and email, newest first.
func (s *InvoiceStore) List() ([]models.Invoice, error) {
	rows, err := s.db.Query(`
		SELECT i.id, i.invoice_number, i.amount, i.currency, i.status,
		       i.description, i.due_date, i.paid_date, i.client_id,
		       i.project_id, i.created_at, i.updated_at, p.name, p.email
		FROM invoices i
		JOIN profiles p ON p.id = i.client_id
		ORDER BY i.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var items []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.Amount, &inv.Currency, &inv.Status,
			&inv.Description, &inv.DueDate, &inv.PaidDate, &inv.ClientID,
			&inv.ProjectID, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.ClientName, &inv.ClientEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		items = append(items, inv)
	}
	return items, rows.Err()
}

// ListByClient returns a client's invoices, newest first.
func (s *InvoiceStore) ListByClient(clientID uuid.UUID) ([]models.Invoice, error) {
	rows, err := s.db.Query(`
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list invoices by client: %w", err)
	}
	defer rows.Close()

	var items []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		items = append(items, *inv)
	}
	return items, rows.Err()
}

// ListOutstandingByClient returns a client's sent and overdue invoices.
func (s *InvoiceStore) ListOutstandingByClient(clientID uuid.UUID) ([]models.Invoice, error) {
	rows, err := s.db.Query(`
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE client_id = $1 AND status IN ($2, $3)
		ORDER BY due_date NULLS LAST
	`, clientID, models.InvoiceSent, models.InvoiceOverdue)
	if err != nil {
		return nil, fmt.Errorf("list outstanding invoices: %w", err)
	}
	defer rows.Close()

	var items []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		items = append(items, *inv)
	}
	return items, rows.Err()
}

// FindByID retrieves an invoice by ID. Returns nil if not found.
func (s *InvoiceStore) FindByID(id uuid.UUID) (*models.Invoice, error) {
	row := s.db.QueryRow(`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find invoice by id: %w", err)
	}
	return inv, nil
}

// Create inserts a new invoice and returns it.
func (s *InvoiceStore) Create(inv *models.Invoice) (*models.Invoice, error) {
	row := s.db.QueryRow(`
		INSERT INTO invoices (invoice_number, amount, currency, status, description, due_date, client_id, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+invoiceColumns,
		inv.InvoiceNumber, inv.Amount, inv.Currency, inv.Status,
		inv.Description, inv.DueDate, inv.ClientID, inv.ProjectID,
	)
	result, err := scanInvoice(row)
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return result, nil
}

// UpdateStatus sets the status field and returns the patched invoice.
// Moving to paid stamps paid_date with the transition time, but only when
// no paid_date was previously set; re-applying paid never overwrites it.
// Returns nil if no invoice with that ID exists.
func (s *InvoiceStore) UpdateStatus(id uuid.UUID, status models.InvoiceStatus) (*models.Invoice, error) {
	row := s.db.QueryRow(`
		UPDATE invoices SET
			status = $1,
			paid_date = CASE WHEN $1 = $2 AND paid_date IS NULL THEN NOW() ELSE paid_date END,
			updated_at = NOW()
		WHERE id = $3
		RETURNING `+invoiceColumns,
		status, models.InvoicePaid, id,
	)
	inv, err := scanInvoice(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}
	return inv, nil
}

// TotalRevenue returns the sum of all paid invoice amounts.
func (s *InvoiceStore) TotalRevenue() (float64, error) {
	var total float64
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1
	`, models.InvoicePaid).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// PendingRevenue returns the sum of sent and overdue invoice amounts.
func (s *InvoiceStore) PendingRevenue() (float64, error) {
	var total float64
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status IN ($1, $2)
	`, models.InvoiceSent, models.InvoiceOverdue).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("pending revenue: %w", err)
	}
	return total, nil
}
