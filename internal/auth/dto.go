package auth

import (
	"github.com/google/uuid"

	"github.com/sarayacafe/menu-backend/internal/users"
	"github.com/sarayacafe/menu-backend/pkg/enums"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and the authenticated user.
type LoginResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the refresh token presented for a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshResponse returns a fresh access token alongside the current user.
// The refresh token is not rotated; the one presented stays valid until it
// expires.
type RefreshResponse struct {
	AccessToken string         `json:"accessToken"`
	User        *users.UserDTO `json:"user"`
}

// ChangePasswordRequest carries the current and replacement passwords.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// CreateUserRequest is the admin-facing payload for provisioning an account.
type CreateUserRequest struct {
	Email     string         `json:"email" validate:"required,email"`
	Password  string         `json:"password" validate:"required,min=8"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Role      enums.UserRole `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER"`
}

// ResetPasswordRequest overwrites another user's password.
type ResetPasswordRequest struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	NewPassword string    `json:"newPassword" validate:"required,min=8"`
}
