// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle implements status management for template orders,
// projects, and invoices, plus project/invoice creation and project
// deletion. Status values form a display state machine: any status may be
// set to any other status directly, with no transition guards.
// An update writes the remote row first and only then hands the
// patched entity back, so callers never see an unconfirmed state.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"studioportal/internal/dates"
	"studioportal/internal/models"
	"studioportal/internal/store"
)

var (
	// ErrNotFound means the targeted entity no longer exists.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidStatus means the requested status is not in the entity's
	// enumeration.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrConfirmation means a delete was attempted without the exact
	// project name as confirmation.
	ErrConfirmation = errors.New("confirmation does not match project name")
)

// Manager coordinates lifecycle operations across the order, project, and
// invoice stores.
type Manager struct {
	orders   *store.OrderStore
	projects *store.ProjectStore
	invoices *store.InvoiceStore
}

// NewManager returns a lifecycle manager over the given stores.
func NewManager(orders *store.OrderStore, projects *store.ProjectStore, invoices *store.InvoiceStore) *Manager {
	return &Manager{orders: orders, projects: projects, invoices: invoices}
}

// SetOrderStatus updates only the status of a template order and returns
// the patched order.
func (m *Manager) SetOrderStatus(id uuid.UUID, status models.WorkStatus) (*models.TemplateOrder, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	o, err := m.orders.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// SetProjectStatus updates only the status of a project and returns the
// patched project.
func (m *Manager) SetProjectStatus(id uuid.UUID, status models.WorkStatus) (*models.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	p, err := m.projects.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// SetInvoiceStatus updates the status of an invoice and returns the patched
// invoice. Moving to paid stamps paid_date exactly once; the store never
// overwrites an existing paid_date.
func (m *Manager) SetInvoiceStatus(id uuid.UUID, status models.InvoiceStatus) (*models.Invoice, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	inv, err := m.invoices.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrNotFound
	}
	return inv, nil
}

// ProjectDraft carries the fields for a new project.
type ProjectDraft struct {
	Name        string
	Description string
	Tier        models.Tier
	ClientID    uuid.UUID
	URL         *string
	StartDate   *string
	Notes       *string
}

// Validate reports the first problem with the draft, or "" if it can be
// submitted. A project needs a non-empty name and a selected client.
func (d ProjectDraft) Validate() string {
	if strings.TrimSpace(d.Name) == "" {
		return "Project name is required."
	}
	if d.ClientID == uuid.Nil {
		return "A client must be selected."
	}
	return ""
}

// CreateProject validates and inserts a new project, then refetches the
// full joined list so client name/email come back consistent for every row.
func (m *Manager) CreateProject(d ProjectDraft) ([]models.Project, error) {
	if msg := d.Validate(); msg != "" {
		return nil, fmt.Errorf("invalid project: %s", msg)
	}

	p := &models.Project{
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Status:      models.StatusPending,
		Tier:        d.Tier,
		ClientID:    d.ClientID,
		URL:         d.URL,
		Notes:       d.Notes,
	}
	if p.Tier == "" {
		p.Tier = models.TierLaunch
	}
	if d.StartDate != nil {
		start, err := dates.Parse(*d.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid project: %s", "Start date is not a valid date.")
		}
		p.StartDate = start
	}

	if _, err := m.projects.Create(p); err != nil {
		return nil, err
	}
	return m.projects.List()
}

// DeleteProject hard-deletes a project. The caller must pass the exact
// project name as confirmation; anything else aborts the delete.
func (m *Manager) DeleteProject(id uuid.UUID, confirmName string) error {
	p, err := m.projects.FindByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if confirmName != p.Name {
		return ErrConfirmation
	}
	return m.projects.Delete(id)
}

// InvoiceDraft carries the fields for a new invoice.
type InvoiceDraft struct {
	InvoiceNumber string
	Amount        float64
	Currency      string
	Description   string
	DueDate       *string
	ClientID      uuid.UUID
	ProjectID     *uuid.UUID
}

// Validate reports the first problem with the draft, or "" if it can be
// submitted.
func (d InvoiceDraft) Validate() string {
	if strings.TrimSpace(d.InvoiceNumber) == "" {
		return "Invoice number is required."
	}
	if d.ClientID == uuid.Nil {
		return "A client must be selected."
	}
	if d.Amount < 0 {
		return "Amount cannot be negative."
	}
	return ""
}

// CreateInvoice validates and inserts a new draft invoice, then refetches
// the full joined list.
func (m *Manager) CreateInvoice(d InvoiceDraft) ([]models.Invoice, error) {
	if msg := d.Validate(); msg != "" {
		return nil, fmt.Errorf("invalid invoice: %s", msg)
	}

	currency := d.Currency
	if currency == "" {
		currency = "EUR"
	}

	inv := &models.Invoice{
		InvoiceNumber: strings.TrimSpace(d.InvoiceNumber),
		Amount:        d.Amount,
		Currency:      currency,
		Status:        models.InvoiceDraft,
		Description:   d.Description,
		ClientID:      d.ClientID,
		ProjectID:     d.ProjectID,
	}
	if d.DueDate != nil {
		due, err := dates.Parse(*d.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid invoice: %s", "Due date is not a valid date.")
		}
		inv.DueDate = due
	}

	if _, err := m.invoices.Create(inv); err != nil {
		return nil, err
	}
	return m.invoices.List()
}
