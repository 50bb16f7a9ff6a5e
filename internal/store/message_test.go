package store

import (
	"testing"

	"studioportal/internal/models"
)

func TestMessageMarkThreadRead(t *testing.T) {
	db := testDB(t)
	userID := testProfile(t, db, "thread-read@example.com")
	cleanMessages(t, db, userID)
	t.Cleanup(func() { cleanMessages(t, db, userID) })

	messages := NewMessageStore(db)

	// Two client messages and one agency message, all unread on insert.
	for _, m := range []models.Message{
		{Content: "hello", UserID: userID},
		{Content: "anyone there?", UserID: userID},
		{Content: "hi, yes", UserID: userID, FromAdmin: true},
	} {
		if _, err := messages.Create(&m); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	unread, err := messages.CountUnread(userID, false)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 2 {
		t.Fatalf("unread client messages = %d, want 2", unread)
	}

	// Opening the thread on the admin side batch-marks client messages.
	n, err := messages.MarkThreadRead(userID, false)
	if err != nil {
		t.Fatalf("mark thread read: %v", err)
	}
	if n != 2 {
		t.Errorf("marked %d messages, want 2", n)
	}

	unread, err = messages.CountUnread(userID, false)
	if err != nil {
		t.Fatalf("count unread after: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after mark = %d, want 0", unread)
	}

	// The agency message stays unread for the client side.
	adminUnread, err := messages.CountUnread(userID, true)
	if err != nil {
		t.Fatalf("count admin unread: %v", err)
	}
	if adminUnread != 1 {
		t.Errorf("unread agency messages = %d, want 1", adminUnread)
	}
}

func TestMessageListByUserOrder(t *testing.T) {
	db := testDB(t)
	userID := testProfile(t, db, "thread-order@example.com")
	cleanMessages(t, db, userID)
	t.Cleanup(func() { cleanMessages(t, db, userID) })

	messages := NewMessageStore(db)
	for _, content := range []string{"first", "second", "third"} {
		if _, err := messages.Create(&models.Message{Content: content, UserID: userID}); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	msgs, err := messages.ListByUser(userID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[2].Content != "third" {
		t.Errorf("messages out of chronological order: %q ... %q", msgs[0].Content, msgs[2].Content)
	}
}
