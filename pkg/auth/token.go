package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sarayacafe/menu-backend/pkg/config"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ErrInvalidToken signals a token whose signature or structure is wrong.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired signals a structurally valid token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// MintAccessToken issues a signed short-lived JWT carrying the user identity.
func MintAccessToken(cfg config.JWTConfig, now time.Time, userID uuid.UUID, email string) (string, error) {
	if cfg.AccessSecret == "" {
		return "", fmt.Errorf("jwt access secret is required")
	}
	if cfg.Issuer == "" {
		return "", fmt.Errorf("jwt issuer is required")
	}
	if cfg.AccessTTLMinutes <= 0 {
		return "", fmt.Errorf("jwt access ttl must be positive")
	}
	if email == "" {
		return "", fmt.Errorf("email is required")
	}

	claims := AccessTokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL())),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// MintRefreshToken issues a signed long-lived JWT carrying the user id only,
// using the refresh secret.
func MintRefreshToken(cfg config.JWTConfig, now time.Time, userID uuid.UUID) (string, error) {
	if cfg.RefreshSecret == "" {
		return "", fmt.Errorf("jwt refresh secret is required")
	}
	if cfg.Issuer == "" {
		return "", fmt.Errorf("jwt issuer is required")
	}
	if cfg.RefreshTTLMinutes <= 0 {
		return "", fmt.Errorf("jwt refresh ttl must be positive")
	}

	claims := RefreshTokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.RefreshTTL())),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.RefreshSecret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the JWT string against the access secret and
// returns typed claims. Expired tokens surface ErrTokenExpired, every other
// verification failure surfaces ErrInvalidToken.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	if err := parseWithSecret(cfg, tokenString, cfg.AccessSecret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates the JWT string against the refresh secret.
func ParseRefreshToken(cfg config.JWTConfig, tokenString string) (*RefreshTokenClaims, error) {
	claims := &RefreshTokenClaims{}
	if err := parseWithSecret(cfg, tokenString, cfg.RefreshSecret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func parseWithSecret(cfg config.JWTConfig, tokenString, secret string, claims jwt.Claims) error {
	if secret == "" {
		return fmt.Errorf("jwt secret is required")
	}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return nil
}
