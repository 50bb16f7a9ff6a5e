package lifecycle

import (
	"testing"

	"github.com/google/uuid"
)

func TestProjectDraftValidate(t *testing.T) {
	client := uuid.New()

	tests := []struct {
		name  string
		draft ProjectDraft
		want  string
	}{
		{"valid", ProjectDraft{Name: "Site Relaunch", ClientID: client}, ""},
		{"blank name", ProjectDraft{Name: "   ", ClientID: client}, "Project name is required."},
		{"no client", ProjectDraft{Name: "Site Relaunch"}, "A client must be selected."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Validate(); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvoiceDraftValidate(t *testing.T) {
	client := uuid.New()

	tests := []struct {
		name  string
		draft InvoiceDraft
		want  string
	}{
		{"valid", InvoiceDraft{InvoiceNumber: "INV-001", ClientID: client, Amount: 500}, ""},
		{"zero amount ok", InvoiceDraft{InvoiceNumber: "INV-002", ClientID: client}, ""},
		{"blank number", InvoiceDraft{InvoiceNumber: " ", ClientID: client}, "Invoice number is required."},
		{"no client", InvoiceDraft{InvoiceNumber: "INV-003"}, "A client must be selected."},
		{"negative amount", InvoiceDraft{InvoiceNumber: "INV-004", ClientID: client, Amount: -1}, "Amount cannot be negative."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.draft.Validate(); got != tt.want {
				t.Errorf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}
