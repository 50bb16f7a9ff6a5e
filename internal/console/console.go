// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"studioportal/internal/models"
	"studioportal/internal/store"
)

var (
	// ErrNotFound means the targeted entity no longer exists.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidStatus means the requested contact status is unknown.
	ErrInvalidStatus = errors.New("invalid status")
)

// Console coordinates the admin console operations over contacts,
// messages, and campaigns.
type Console struct {
	contacts  *store.ContactStore
	messages  *store.MessageStore
	campaigns *store.CampaignStore
}

// New returns a console over the given stores.
func New(contacts *store.ContactStore, messages *store.MessageStore, campaigns *store.CampaignStore) *Console {
	return &Console{contacts: contacts, messages: messages, campaigns: campaigns}
}

// --- Message threads ---

// ListThreads loads every message and groups them into per-user threads,
// newest activity first.
func (c *Console) ListThreads() ([]Thread, error) {
	msgs, err := c.messages.ListAll()
	if err != nil {
		return nil, err
	}
	return BuildThreads(msgs), nil
}

// OpenThread returns one user's thread after marking all unread client-sent
// messages read in a single batch update. The returned thread has its read
// flags patched locally rather than refetched.
func (c *Console) OpenThread(userID uuid.UUID) (*Thread, error) {
	msgs, err := c.messages.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	threads := BuildThreads(msgs)
	if len(threads) == 0 {
		return &Thread{UserID: userID}, nil
	}
	th := threads[0]

	if _, err := c.messages.MarkThreadRead(userID, false); err != nil {
		// The batch update failed, so hand back nothing; the unread state
		// must keep reflecting the store.
		return nil, err
	}
	th.markRead(false)
	return &th, nil
}

// Reply appends an agency reply to a user's thread, then refetches and
// regroups every thread so the new message lands in the right place.
func (c *Console) Reply(userID uuid.UUID, subject *string, content string) ([]Thread, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("reply content is required")
	}

	_, err := c.messages.Create(&models.Message{
		Content:   content,
		Subject:   subject,
		FromAdmin: true,
		UserID:    userID,
	})
	if err != nil {
		return nil, err
	}
	return c.ListThreads()
}

// --- Contact submissions ---

// StatusCounts tallies contact submissions per status for the console's
// filter chips.
type StatusCounts map[models.ContactStatus]int

// ListContacts returns all submissions plus per-status counts.
func (c *Console) ListContacts() ([]models.ContactSubmission, StatusCounts, error) {
	items, err := c.contacts.List()
	if err != nil {
		return nil, nil, err
	}
	counts := make(StatusCounts)
	for _, item := range items {
		counts[item.Status]++
	}
	return items, counts, nil
}

// FindContact returns one submission for the console's detail pane.
func (c *Console) FindContact(id uuid.UUID) (*models.ContactSubmission, error) {
	sub, err := c.contacts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

// SetContactStatus updates only the status of a submission. The status is
// set independently of any reply having been sent.
func (c *Console) SetContactStatus(id uuid.UUID, status models.ContactStatus) (*models.ContactSubmission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	sub, err := c.contacts.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}

// SaveContactNotes updates only the notes of a submission. An empty or
// whitespace draft is normalized to NULL.
func (c *Console) SaveContactNotes(id uuid.UUID, notes string) (*models.ContactSubmission, error) {
	var value *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		value = &trimmed
	}
	sub, err := c.contacts.UpdateNotes(id, value)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}
	return sub, nil
}
