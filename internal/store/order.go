// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

// OrderStore manages template orders. Orders are never deleted, only
// archived via a status change.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore returns a new OrderStore.
func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, order_number, client_id, business_name, price, status, created_at, updated_at`

// scanOrder scans an order row without joined client fields.
func scanOrder(scanner interface{ Scan(...any) error }) (*models.TemplateOrder, error) {
	var o models.TemplateOrder
	err := scanner.Scan(
		&o.ID, &o.OrderNumber, &o.ClientID, &o.BusinessName,
		&o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns all orders joined with client name and email, newest first.
func (s *OrderStore) List() ([]models.TemplateOrder, error) {
	rows, err := s.db.Query(`
		SELECT o.id, o.order_number, o.client_id, o.business_name, o.price,
		       o.status, o.created_at, o.updated_at, p.name, p.email
		FROM template_orders o
		JOIN profiles p ON p.id = o.client_id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var items []models.TemplateOrder
	for rows.Next() {
		var o models.TemplateOrder
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.ClientID, &o.BusinessName,
			&o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt,
			&o.ClientName, &o.ClientEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

// ListByClient returns a client's orders, newest first.
func (s *OrderStore) ListByClient(clientID uuid.UUID) ([]models.TemplateOrder, error) {
	return s.listByClient(clientID, 0)
}

// RecentByClient returns a client's most recent orders, capped at limit.
func (s *OrderStore) RecentByClient(clientID uuid.UUID, limit int) ([]models.TemplateOrder, error) {
	return s.listByClient(clientID, limit)
}

func (s *OrderStore) listByClient(clientID uuid.UUID, limit int) ([]models.TemplateOrder, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM template_orders
		WHERE client_id = $1
		ORDER BY created_at DESC`
	args := []any{clientID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders by client: %w", err)
	}
	defer rows.Close()

	var items []models.TemplateOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		items = append(items, *o)
	}
	return items, rows.Err()
}

// FindByID retrieves an order by ID. Returns nil if not found.
func (s *OrderStore) FindByID(id uuid.UUID) (*models.TemplateOrder, error) {
	row := s.db.QueryRow(`SELECT `+orderColumns+` FROM template_orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order by id: %w", err)
	}
	return o, nil
}

// Create inserts a new order with a generated order number and returns it.
func (s *OrderStore) Create(o *models.TemplateOrder) (*models.TemplateOrder, error) {
	row := s.db.QueryRow(`
		INSERT INTO template_orders (order_number, client_id, business_name, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		NewOrderNumber(), o.ClientID, o.BusinessName, o.Price, models.StatusPending,
	)
	result, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return result, nil
}

// UpdateStatus sets only the status field and returns the patched order.
// Returns nil if no order with that ID exists.
func (s *OrderStore) UpdateStatus(id uuid.UUID, status models.WorkStatus) (*models.TemplateOrder, error) {
	row := s.db.QueryRow(`
		UPDATE template_orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns,
		status, id,
	)
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}

// NewOrderNumber generates a human-readable unique order number,
// e.g. ORD-20260901-4F2A1C.
func NewOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
