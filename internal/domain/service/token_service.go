package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. A verified token is the sole authorization check in the system.
type TokenService interface {
	// Issue creates a signed bearer token encoding the user's ID.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks a token string and returns its claims. It fails if
	// the signature does not validate, the token is malformed or expired.
	Verify(tokenString string) (*Claims, error)
}
