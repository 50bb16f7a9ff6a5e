// Package auth verifies access tokens minted by the hosted auth provider.
// The portal never handles signup, login, or passwords. It only checks a
// token's HMAC signature and maps the subject to a profile id and role.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"studioportal/internal/models"
)

// Claims is the verified identity carried by a portal request.
type Claims struct {
	ProfileID uuid.UUID
	Role      models.ProfileRole
}

// Verifier validates HS256 tokens against the shared provider secret.
type Verifier struct {
	secret []byte
}

// NewVerifier returns a verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Parse validates a token string and extracts its claims. The token must be
// signed with HS256, unexpired, and carry a UUID subject plus a role claim.
func (v *Verifier) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("token subject: %w", err)
	}
	profileID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a uuid: %w", err)
	}

	role, _ := mapClaims["role"].(string)
	switch models.ProfileRole(role) {
	case models.RoleClient, models.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	return &Claims{ProfileID: profileID, Role: models.ProfileRole(role)}, nil
}

// Sign mints a token the way the hosted provider does. Used by tests and
// local development tooling.
func Sign(secret string, profileID uuid.UUID, role models.ProfileRole, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  profileID.String(),
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
