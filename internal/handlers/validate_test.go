package handlers

import (
	"strings"
	"testing"
)

func TestValidateContactForm(t *testing.T) {
	tests := []struct {
		name    string
		n, e, m string
		wantOK  bool
	}{
		{"valid", "Ana", "ana@example.com", "I need a website.", true},
		{"blank name", "  ", "ana@example.com", "hello", false},
		{"missing email", "Ana", "", "hello", false},
		{"bad email", "Ana", "not-an-email", "hello", false},
		{"blank message", "Ana", "ana@example.com", "   ", false},
		{"long message", "Ana", "ana@example.com", strings.Repeat("x", maxMessageLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateContactForm(tt.n, tt.e, tt.m)
			if (got == "") != tt.wantOK {
				t.Errorf("validateContactForm = %q, want ok=%v", got, tt.wantOK)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	for _, valid := range []string{"a@b.co", "first.last@sub.domain.org"} {
		if msg := validateEmail(valid); msg != "" {
			t.Errorf("validateEmail(%q) = %q, want ok", valid, msg)
		}
	}
	for _, invalid := range []string{"", "@x.com", "a@", "a@nodot", "plain"} {
		if msg := validateEmail(invalid); msg == "" {
			t.Errorf("validateEmail(%q) passed, want rejection", invalid)
		}
	}
}

func TestValidateOrder(t *testing.T) {
	if msg := validateOrder("Savoria Bistro", 499); msg != "" {
		t.Errorf("valid order rejected: %q", msg)
	}
	if msg := validateOrder("  ", 499); msg == "" {
		t.Error("blank business name accepted")
	}
	if msg := validateOrder("Savoria Bistro", -1); msg == "" {
		t.Error("negative price accepted")
	}
	// Free templates are a valid order.
	if msg := validateOrder("Savoria Bistro", 0); msg != "" {
		t.Errorf("zero price rejected: %q", msg)
	}
}
