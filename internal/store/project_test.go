package store

import (
	"testing"

	"studioportal/internal/models"
)

func TestProjectDeleteLeavesOthers(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "project-delete@example.com")
	names := []string{"Doomed Project", "Survivor One", "Survivor Two"}
	cleanProjects(t, db, names...)
	t.Cleanup(func() { cleanProjects(t, db, names...) })

	projects := NewProjectStore(db)

	var doomed *models.Project
	for _, name := range names {
		p, err := projects.Create(&models.Project{
			Name:     name,
			Status:   models.StatusPending,
			Tier:     models.TierLaunch,
			ClientID: clientID,
		})
		if err != nil {
			t.Fatalf("create project %s: %v", name, err)
		}
		if name == "Doomed Project" {
			doomed = p
		}
	}

	if err := projects.Delete(doomed.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	remaining, err := projects.ListByClient(clientID)
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("remaining projects = %d, want 2", len(remaining))
	}
	for _, p := range remaining {
		if p.Name == "Doomed Project" {
			t.Error("deleted project still listed")
		}
	}
}

func TestProjectUpdateStatus(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "project-status@example.com")
	cleanProjects(t, db, "Status Project")
	t.Cleanup(func() { cleanProjects(t, db, "Status Project") })

	projects := NewProjectStore(db)
	p, err := projects.Create(&models.Project{
		Name:     "Status Project",
		Status:   models.StatusPending,
		Tier:     models.TierGrowth,
		ClientID: clientID,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	// Jumping straight to archived is allowed.
	patched, err := projects.UpdateStatus(p.ID, models.StatusArchived)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if patched == nil || patched.Status != models.StatusArchived {
		t.Fatalf("patched project = %+v, want archived", patched)
	}
	// Other fields ride along unchanged.
	if patched.Name != "Status Project" || patched.Tier != models.TierGrowth {
		t.Errorf("patch touched unrelated fields: %+v", patched)
	}
}

func TestProjectUpdateStatusSameValue(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "project-same-status@example.com")
	cleanProjects(t, db, "Same Status Project")
	t.Cleanup(func() { cleanProjects(t, db, "Same Status Project") })

	projects := NewProjectStore(db)
	p, err := projects.Create(&models.Project{
		Name:     "Same Status Project",
		Status:   models.StatusInProgress,
		Tier:     models.TierScale,
		ClientID: clientID,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	// Re-setting the current status still writes and returns the project.
	patched, err := projects.UpdateStatus(p.ID, models.StatusInProgress)
	if err != nil {
		t.Fatalf("update status to same value: %v", err)
	}
	if patched == nil || patched.Status != models.StatusInProgress {
		t.Fatalf("patched project = %+v, want in_progress", patched)
	}
	if patched.Name != p.Name || patched.Tier != p.Tier {
		t.Errorf("same-value patch touched other fields: %+v", patched)
	}
	if patched.UpdatedAt.Before(p.UpdatedAt) {
		t.Errorf("updated_at went backwards: %s before %s", patched.UpdatedAt, p.UpdatedAt)
	}
}
