package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

func TestOrderCreateAndStatus(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "order-test@example.com")
	cleanOrders(t, db, "Order Test Bistro")
	t.Cleanup(func() { cleanOrders(t, db, "Order Test Bistro") })

	orders := NewOrderStore(db)

	created, err := orders.Create(&models.TemplateOrder{
		ClientID:     clientID,
		BusinessName: "Order Test Bistro",
		Price:        499,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Errorf("new order status = %q, want pending", created.Status)
	}
	if !strings.HasPrefix(created.OrderNumber, "ORD-") {
		t.Errorf("order number %q lacks ORD- prefix", created.OrderNumber)
	}

	found, err := orders.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.OrderNumber != created.OrderNumber {
		t.Fatalf("found order = %+v, want %s", found, created.OrderNumber)
	}

	// Any status may be set to any other status directly.
	patched, err := orders.UpdateStatus(created.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if patched == nil || patched.Status != models.StatusCompleted {
		t.Fatalf("patched order = %+v, want completed", patched)
	}

	// Back to pending is equally allowed.
	patched, err = orders.UpdateStatus(created.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("update status back: %v", err)
	}
	if patched.Status != models.StatusPending {
		t.Errorf("patched order status = %q, want pending", patched.Status)
	}
}

func TestOrderUpdateStatusSameValue(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "order-same-status@example.com")
	cleanOrders(t, db, "Same Status Bistro")
	t.Cleanup(func() { cleanOrders(t, db, "Same Status Bistro") })

	orders := NewOrderStore(db)
	created, err := orders.Create(&models.TemplateOrder{
		ClientID:     clientID,
		BusinessName: "Same Status Bistro",
		Price:        250,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Re-setting the current status still writes and returns the order.
	patched, err := orders.UpdateStatus(created.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("update status to same value: %v", err)
	}
	if patched == nil || patched.Status != models.StatusPending {
		t.Fatalf("patched order = %+v, want pending", patched)
	}
	if patched.BusinessName != created.BusinessName || patched.Price != created.Price ||
		patched.OrderNumber != created.OrderNumber {
		t.Errorf("same-value patch touched other fields: %+v", patched)
	}
	if patched.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updated_at went backwards: %s before %s", patched.UpdatedAt, created.UpdatedAt)
	}
}

func TestOrderUpdateStatusMissing(t *testing.T) {
	db := testDB(t)
	orders := NewOrderStore(db)

	patched, err := orders.UpdateStatus(uuid.New(), models.StatusArchived)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if patched != nil {
		t.Errorf("expected nil for missing order, got %+v", patched)
	}
}

func TestOrderRecentByClient(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "order-recent@example.com")
	names := []string{"Recent A", "Recent B", "Recent C", "Recent D"}
	cleanOrders(t, db, names...)
	t.Cleanup(func() { cleanOrders(t, db, names...) })

	orders := NewOrderStore(db)
	for _, name := range names {
		if _, err := orders.Create(&models.TemplateOrder{
			ClientID:     clientID,
			BusinessName: name,
			Price:        100,
		}); err != nil {
			t.Fatalf("create order %s: %v", name, err)
		}
	}

	recent, err := orders.RecentByClient(clientID, 3)
	if err != nil {
		t.Fatalf("recent by client: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent orders = %d, want capped at 3", len(recent))
	}

	all, err := orders.ListByClient(clientID)
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("all orders = %d, want 4", len(all))
	}
}
