package store

import (
	"testing"

	"studioportal/internal/models"
)

func TestContactLifecycle(t *testing.T) {
	db := testDB(t)
	cleanContacts(t, db, "contact-test@example.com")
	t.Cleanup(func() { cleanContacts(t, db, "contact-test@example.com") })

	contacts := NewContactStore(db)

	created, err := contacts.Create(&models.ContactSubmission{
		Name:    "Test Visitor",
		Email:   "contact-test@example.com",
		Message: "I need a website for my bakery.",
	})
	if err != nil {
		t.Fatalf("create contact: %v", err)
	}
	if created.Status != models.ContactNew {
		t.Errorf("new submission status = %q, want new", created.Status)
	}

	found, err := contacts.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.Email != created.Email {
		t.Fatalf("found submission = %+v, want %s", found, created.Email)
	}

	patched, err := contacts.UpdateStatus(created.ID, models.ContactReplied)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if patched.Status != models.ContactReplied {
		t.Errorf("status = %q, want replied", patched.Status)
	}

	notes := "Quoted Launch tier."
	patched, err = contacts.UpdateNotes(created.ID, &notes)
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if patched.Notes == nil || *patched.Notes != notes {
		t.Errorf("notes = %v, want %q", patched.Notes, notes)
	}

	// Clearing notes stores NULL, not an empty string.
	patched, err = contacts.UpdateNotes(created.ID, nil)
	if err != nil {
		t.Fatalf("clear notes: %v", err)
	}
	if patched.Notes != nil {
		t.Errorf("cleared notes = %v, want nil", patched.Notes)
	}
}
