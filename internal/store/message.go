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

// MessageStore manages conversation messages. Thread grouping happens in
// memory (internal/console); this store only deals in flat message lists.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore returns a new MessageStore.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

const messageColumns = `id, content, subject, from_admin, read, user_id, created_at`

// scanMessage scans a row into a Message struct.
func scanMessage(scanner interface{ Scan(...any) error }) (*models.Message, error) {
	var m models.Message
	err := scanner.Scan(
		&m.ID, &m.Content, &m.Subject, &m.FromAdmin, &m.Read, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAll returns every message ordered by creation time. The admin console
// groups them into per-user threads in memory.
func (s *MessageStore) ListAll() ([]models.Message, error) {
	rows, err := s.db.Query(`SELECT ` + messageColumns + ` FROM messages ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var items []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// ListByUser returns one user's conversation ordered by creation time.
func (s *MessageStore) ListByUser(userID uuid.UUID) ([]models.Message, error) {
	rows, err := s.db.Query(`
		SELECT `+messageColumns+` FROM messages WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages by user: %w", err)
	}
	defer rows.Close()

	var items []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// CountUnread returns the number of unread messages for a user sent from
// the given direction (fromAdmin=false counts client-sent messages).
func (s *MessageStore) CountUnread(userID uuid.UUID, fromAdmin bool) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM messages
		WHERE user_id = $1 AND from_admin = $2 AND read = FALSE
	`, userID, fromAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

// Create appends a message to a user's conversation and returns it.
func (s *MessageStore) Create(m *models.Message) (*models.Message, error) {
	row := s.db.QueryRow(`
		INSERT INTO messages (content, subject, from_admin, read, user_id)
		VALUES ($1, $2, $3, FALSE, $4)
		RETURNING `+messageColumns,
		m.Content, m.Subject, m.FromAdmin, m.UserID,
	)
	result, err := scanMessage(row)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return result, nil
}

// MarkThreadRead marks all unread messages in a user's thread sent from the
// given direction as read, in one batch update. Returns the number of
// messages updated.
func (s *MessageStore) MarkThreadRead(userID uuid.UUID, fromAdmin bool) (int, error) {
	res, err := s.db.Exec(`
		UPDATE messages SET read = TRUE
		WHERE user_id = $1 AND from_admin = $2 AND read = FALSE
	`, userID, fromAdmin)
	if err != nil {
		return 0, fmt.Errorf("mark thread read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark thread read rows: %w", err)
	}
	return int(n), nil
}
