package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/sarayacafe/menu-backend/pkg/enums"
)

type contextKey string

const ctxIdentity contextKey = "identity"

// Identity is the authenticated caller attached to the request context.
// Role comes from the database at request time, not from the token, so a
// role change takes effect on the next request.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  enums.UserRole
}

// IdentityFromContext returns the caller identity, or nil when the request
// was not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxIdentity).(*Identity); ok {
		return v
	}
	return nil
}

// WithIdentity injects the caller identity into the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}
