// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the invoice lifecycle enumeration. Cancelled is the
// escape state; transitioning to paid stamps PaidDate exactly once.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Valid reports whether s is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// Outstanding reports whether the invoice counts toward pending revenue.
func (s InvoiceStatus) Outstanding() bool {
	return s == InvoiceSent || s == InvoiceOverdue
}

// Invoice is a billing record for a client, optionally tied to a project.
// Revenue aggregates are derived from invoices, never stored.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        InvoiceStatus `json:"status"`
	Description   string        `json:"description"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	ClientID      uuid.UUID     `json:"client_id"`
	ProjectID     *uuid.UUID    `json:"project_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Populated by the joined admin listing.
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
}
