// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkStatus is the shared status enumeration for template orders and
// projects. Any status may be set to any other status directly; the portal
// does not enforce transition ordering.
type WorkStatus string

const (
	StatusPending    WorkStatus = "pending"
	StatusInProgress WorkStatus = "in_progress"
	StatusReview     WorkStatus = "review"
	StatusCompleted  WorkStatus = "completed"
	StatusArchived   WorkStatus = "archived"
)

// WorkStatuses lists every valid work status value.
var WorkStatuses = []WorkStatus{
	StatusPending, StatusInProgress, StatusReview, StatusCompleted, StatusArchived,
}

// Valid reports whether s is a known work status.
func (s WorkStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReview, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Active reports whether the status counts toward "active" work on the
// client dashboard. Completed and archived work is excluded.
func (s WorkStatus) Active() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReview:
		return true
	}
	return false
}

// TemplateOrder records a client's purchase of a catalog template.
// Orders are never deleted, only archived.
type TemplateOrder struct {
	ID           uuid.UUID  `json:"id"`
	OrderNumber  string     `json:"order_number"`
	ClientID     uuid.UUID  `json:"client_id"`
	BusinessName string     `json:"business_name"`
	Price        float64    `json:"price"`
	Status       WorkStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Populated by the joined admin listing.
	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
}
