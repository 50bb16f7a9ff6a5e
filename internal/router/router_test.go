package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/auth"
	"studioportal/internal/handlers"
	"studioportal/internal/metrics"
	"studioportal/internal/middleware"
	"studioportal/internal/models"
)

const testSecret = "router-test-secret"

// Shared across tests: promauto registers on the default registry, and
// registering the same collectors twice panics.
var testMetrics = metrics.New()

// testRouter builds the full route tree with nil-store handler groups. The
// middleware chain rejects unauthenticated and unauthorized requests before
// any handler touches a store, which is what these tests exercise.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	limiter := middleware.NewRateLimiter(10_000, time.Minute)
	t.Cleanup(limiter.Stop)

	return New(
		auth.NewVerifier(testSecret),
		limiter,
		testMetrics,
		handlers.NewPublic(nil, nil, nil),
		handlers.NewPortal(nil, nil, nil, nil, nil, nil, nil),
		handlers.NewAdmin(nil, nil, nil, nil, nil, nil, nil, nil, nil, nil),
	)
}

func token(t *testing.T, role models.ProfileRole) string {
	t.Helper()
	tok, err := auth.Sign(testSecret, uuid.New(), role, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestHealth(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", rr.Body.String())
	}
}

func TestPortalRequiresAuth(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/portal/dashboard", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestAdminRequiresAdminRole(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, models.RoleClient))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

func TestMetricsExposed(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}
