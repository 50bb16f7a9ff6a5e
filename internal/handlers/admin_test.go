package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Client registration validation runs before any storage access, so a
// handler with nil stores exercises every rejection path.
func TestClientCreateRejectsBadInput(t *testing.T) {
	admin := NewAdmin(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"unknown field", `{"name":"Ana","email":"a@b.co","role":"admin"}`},
		{"blank name", `{"name":"  ","email":"a@b.co"}`},
		{"bad email", `{"name":"Ana","email":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/clients", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			admin.ClientCreate(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
			if !strings.Contains(rr.Body.String(), "error") {
				t.Errorf("body %q lacks error field", rr.Body.String())
			}
		})
	}
}
