package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"studioportal/internal/models"
)

func TestVerifierRoundTrip(t *testing.T) {
	profileID := uuid.New()

	token, err := Sign("test-secret", profileID, models.RoleClient, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := NewVerifier("test-secret").Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.ProfileID != profileID {
		t.Errorf("profile id = %v, want %v", claims.ProfileID, profileID)
	}
	if claims.Role != models.RoleClient {
		t.Errorf("role = %q, want client", claims.Role)
	}
}

func TestVerifierRejects(t *testing.T) {
	profileID := uuid.New()
	v := NewVerifier("right-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := Sign("wrong-secret", profileID, models.RoleAdmin, time.Hour)
		if _, err := v.Parse(token); err == nil {
			t.Error("expected error for wrong secret")
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, _ := Sign("right-secret", profileID, models.RoleAdmin, -time.Minute)
		if _, err := v.Parse(token); err == nil {
			t.Error("expected error for expired token")
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		token, _ := Sign("right-secret", profileID, models.ProfileRole("superuser"), time.Hour)
		if _, err := v.Parse(token); err == nil {
			t.Error("expected error for unknown role")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := v.Parse("not.a.token"); err == nil {
			t.Error("expected error for malformed token")
		}
	})
}
