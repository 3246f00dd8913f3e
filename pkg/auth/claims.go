package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the typed JWT issued to clients. It deliberately carries
// only the user identifier: role and permissions are re-fetched from the
// users table on every request so account changes take effect immediately.
type SessionClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}
