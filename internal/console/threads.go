// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package console implements the admin console operations: message thread
// management, contact submission triage, and campaign editing.
package console

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

// Thread is one client's conversation, grouped from the flat message list.
// UnreadCount counts client-sent messages the agency hasn't read yet.
type Thread struct {
	UserID      uuid.UUID        `json:"user_id"`
	Messages    []models.Message `json:"messages"`
	LastAt      time.Time        `json:"last_at"`
	UnreadCount int              `json:"unread_count"`
}

// BuildThreads groups messages into one thread per user. Messages keep
// their chronological order within a thread; threads are sorted by the time
// of their last message, newest first. The whole message set is loaded
// eagerly and indexed in memory.
func BuildThreads(msgs []models.Message) []Thread {
	byUser := make(map[uuid.UUID]*Thread)
	var order []uuid.UUID

	for _, m := range msgs {
		th, ok := byUser[m.UserID]
		if !ok {
			th = &Thread{UserID: m.UserID}
			byUser[m.UserID] = th
			order = append(order, m.UserID)
		}
		th.Messages = append(th.Messages, m)
		if m.CreatedAt.After(th.LastAt) {
			th.LastAt = m.CreatedAt
		}
		if !m.FromAdmin && !m.Read {
			th.UnreadCount++
		}
	}

	threads := make([]Thread, 0, len(order))
	for _, id := range order {
		threads = append(threads, *byUser[id])
	}
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastAt.After(threads[j].LastAt)
	})
	return threads
}

// markRead flags every message in the thread matching the direction as
// read, mirroring the batch update locally without a refetch.
func (t *Thread) markRead(fromAdmin bool) {
	for i := range t.Messages {
		if t.Messages[i].FromAdmin == fromAdmin {
			t.Messages[i].Read = true
		}
	}
	if !fromAdmin {
		t.UnreadCount = 0
	}
}
