// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain entities shared between the stores,
// services, and HTTP handlers. Entities map one-to-one onto database tables;
// virtual fields populated by joins are marked as such.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileRole distinguishes portal clients from agency staff.
type ProfileRole string

const (
	RoleClient ProfileRole = "client"
	RoleAdmin  ProfileRole = "admin"
)

// Profile represents a portal user synced from the hosted auth provider.
// A Profile is the aggregate root for a client's projects, invoices,
// messages, and template orders.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Company   *string     `json:"company,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	Country   *string     `json:"country,omitempty"`
	Role      ProfileRole `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IsAdmin returns true for agency staff profiles.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
