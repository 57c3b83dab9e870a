package middleware

import (
	"net/http"

	"github.com/sarayacafe/menu-backend/api/responses"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
	"github.com/sarayacafe/menu-backend/pkg/logger"
)

// RequireRoles gates a route to an allow-list of roles. It assumes Auth
// already ran; a request without an identity answers 401.
func RequireRoles(logg *logger.Logger, allowed ...enums.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required"))
				return
			}
			for _, role := range allowed {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Insufficient permissions"))
		})
	}
}
