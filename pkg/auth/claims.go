package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims represents the typed short-lived JWT issued to clients.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// RefreshTokenClaims carries the user identity only; refresh tokens are
// signed with their own secret and never grant access by themselves.
type RefreshTokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}
