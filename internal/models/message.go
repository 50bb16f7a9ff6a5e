// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in the conversation between a client and the agency.
// Messages sharing a UserID form one thread, ordered by CreatedAt.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Subject   *string   `json:"subject,omitempty"`
	FromAdmin bool      `json:"from_admin"`
	Read      bool      `json:"read"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
