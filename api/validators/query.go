package validators

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
)

// ParseQueryFlag reports whether the query parameter is the literal
// string "true". Every other value, including absence, reads as false.
func ParseQueryFlag(r *http.Request, key string) bool {
	return strings.TrimSpace(r.URL.Query().Get(key)) == "true"
}

// ParseQueryUUID returns nil when the parameter is absent.
func ParseQueryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a UUID").
			WithDetails(map[string]any{"field": key})
	}
	return &id, nil
}

// QueryLanguage reads the lang parameter. The value is echoed back to the
// caller untouched; Arabic is the default when the parameter is absent.
// The public payload always carries both languages, so the value never
// filters anything.
func QueryLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return "ar"
}

// PathUUID parses a URL path segment already extracted by the router.
func PathUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid "+field).
			WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
