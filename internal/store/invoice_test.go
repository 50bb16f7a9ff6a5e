package store

import (
	"testing"
	"time"

	"studioportal/internal/models"
)

func TestInvoicePaidDateStampedOnce(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "invoice-paid@example.com")
	cleanInvoices(t, db, "INV-TEST-PAID")
	t.Cleanup(func() { cleanInvoices(t, db, "INV-TEST-PAID") })

	invoices := NewInvoiceStore(db)

	created, err := invoices.Create(&models.Invoice{
		InvoiceNumber: "INV-TEST-PAID",
		Amount:        1200,
		Currency:      "EUR",
		Status:        models.InvoiceDraft,
		ClientID:      clientID,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if created.PaidDate != nil {
		t.Fatalf("new invoice has paid_date %v, want nil", created.PaidDate)
	}

	found, err := invoices.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found == nil || found.InvoiceNumber != "INV-TEST-PAID" {
		t.Fatalf("found invoice = %+v, want INV-TEST-PAID", found)
	}

	paid, err := invoices.UpdateStatus(created.ID, models.InvoicePaid)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.PaidDate == nil {
		t.Fatal("paid invoice has nil paid_date")
	}
	firstPaid := *paid.PaidDate

	// Cycling away from paid and back must not move the original stamp.
	if _, err := invoices.UpdateStatus(created.ID, models.InvoiceOverdue); err != nil {
		t.Fatalf("mark overdue: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	again, err := invoices.UpdateStatus(created.ID, models.InvoicePaid)
	if err != nil {
		t.Fatalf("mark paid again: %v", err)
	}
	if again.PaidDate == nil || !again.PaidDate.Equal(firstPaid) {
		t.Errorf("paid_date moved: first %v, now %v", firstPaid, again.PaidDate)
	}
}

func TestInvoiceOutstandingAndRevenue(t *testing.T) {
	db := testDB(t)
	clientID := testProfile(t, db, "invoice-summary@example.com")
	numbers := []string{"INV-TEST-S1", "INV-TEST-S2", "INV-TEST-S3"}
	cleanInvoices(t, db, numbers...)
	t.Cleanup(func() { cleanInvoices(t, db, numbers...) })

	invoices := NewInvoiceStore(db)

	for i, status := range []models.InvoiceStatus{models.InvoiceSent, models.InvoiceOverdue, models.InvoiceDraft} {
		inv, err := invoices.Create(&models.Invoice{
			InvoiceNumber: numbers[i],
			Amount:        100,
			Currency:      "EUR",
			Status:        models.InvoiceDraft,
			ClientID:      clientID,
		})
		if err != nil {
			t.Fatalf("create invoice %s: %v", numbers[i], err)
		}
		if status != models.InvoiceDraft {
			if _, err := invoices.UpdateStatus(inv.ID, status); err != nil {
				t.Fatalf("set invoice status: %v", err)
			}
		}
	}

	outstanding, err := invoices.ListOutstandingByClient(clientID)
	if err != nil {
		t.Fatalf("list outstanding: %v", err)
	}
	// Sent and overdue count; the draft does not.
	if len(outstanding) != 2 {
		t.Errorf("outstanding invoices = %d, want 2", len(outstanding))
	}
}
