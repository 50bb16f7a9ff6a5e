package store

import (
	"testing"
)

func TestCategoryListIncludesInactive(t *testing.T) {
	db := testDB(t)
	const slug = "test-hidden-category"
	t.Cleanup(func() {
		db.Exec("DELETE FROM template_categories WHERE slug = $1", slug)
	})

	var insertedID string
	err := db.QueryRow(`
		INSERT INTO template_categories (slug, name, description, icon, color, sort_order, active)
		VALUES ($1, 'Hidden Category', 'Only visible to the console.', 'eye-off', '#808080', 999, FALSE)
		RETURNING id`, slug,
	).Scan(&insertedID)
	if err != nil {
		t.Fatalf("insert category: %v", err)
	}

	categories := NewCategoryStore(db)

	all, err := categories.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var inAll bool
	for _, c := range all {
		if c.Slug == slug {
			inAll = true
		}
	}
	if !inAll {
		t.Error("inactive category missing from List")
	}

	active, err := categories.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	for _, c := range active {
		if c.Slug == slug {
			t.Error("inactive category leaked into ListActive")
		}
	}
}
