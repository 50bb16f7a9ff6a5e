package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/auth"
	"studioportal/internal/models"
)

const testSecret = "middleware-test-secret"

func bearerRequest(t *testing.T, role models.ProfileRole) *http.Request {
	t.Helper()
	token, err := auth.Sign(testSecret, uuid.New(), role, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/portal/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// chain wires Authenticate plus the given enforcement middleware around an
// inner handler that records whether it ran.
func chain(enforce func(http.Handler) http.Handler, ran *bool) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*ran = true
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(auth.NewVerifier(testSecret))(enforce(inner))
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		var ran bool
		rr := httptest.NewRecorder()
		chain(RequireAuth, &ran).ServeHTTP(rr, bearerRequest(t, models.RoleClient))
		if !ran || rr.Code != http.StatusOK {
			t.Errorf("ran=%v status=%d, want handler to run with 200", ran, rr.Code)
		}
	})

	t.Run("no token rejected", func(t *testing.T) {
		var ran bool
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/portal/dashboard", nil)
		chain(RequireAuth, &ran).ServeHTTP(rr, req)
		if ran || rr.Code != http.StatusUnauthorized {
			t.Errorf("ran=%v status=%d, want 401 without handler", ran, rr.Code)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		var ran bool
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/portal/dashboard", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		chain(RequireAuth, &ran).ServeHTTP(rr, req)
		if ran || rr.Code != http.StatusUnauthorized {
			t.Errorf("ran=%v status=%d, want 401 without handler", ran, rr.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		var ran bool
		rr := httptest.NewRecorder()
		chain(RequireAdmin, &ran).ServeHTTP(rr, bearerRequest(t, models.RoleAdmin))
		if !ran || rr.Code != http.StatusOK {
			t.Errorf("ran=%v status=%d, want handler to run with 200", ran, rr.Code)
		}
	})

	t.Run("client rejected", func(t *testing.T) {
		var ran bool
		rr := httptest.NewRecorder()
		chain(RequireAdmin, &ran).ServeHTTP(rr, bearerRequest(t, models.RoleClient))
		if ran || rr.Code != http.StatusForbidden {
			t.Errorf("ran=%v status=%d, want 403 without handler", ran, rr.Code)
		}
	})
}

func TestClaimsFromCtx(t *testing.T) {
	var got *auth.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFromCtx(r.Context())
	})

	rr := httptest.NewRecorder()
	Authenticate(auth.NewVerifier(testSecret))(inner).ServeHTTP(rr, bearerRequest(t, models.RoleClient))

	if got == nil {
		t.Fatal("claims missing from context")
	}
	if got.Role != models.RoleClient {
		t.Errorf("role = %q, want client", got.Role)
	}
}
