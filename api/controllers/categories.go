package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sarayacafe/menu-backend/api/middleware"
	"github.com/sarayacafe/menu-backend/api/responses"
	"github.com/sarayacafe/menu-backend/api/validators"
	category "github.com/sarayacafe/menu-backend/internal/categories"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
	"github.com/sarayacafe/menu-backend/pkg/logger"
)

// publicMenuPayload carries the language echo at the envelope level, the
// shape the menu frontend consumes.
type publicMenuPayload struct {
	Success  bool                      `json:"success"`
	Data     []category.PublicCategory `json:"data"`
	Language string                    `json:"language"`
}

// CategoriesPublic serves the customer-facing menu: active categories with
// their active products and variations, ordered for display.
func CategoriesPublic(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListPublic(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, publicMenuPayload{
			Success:  true,
			Data:     list,
			Language: validators.QueryLanguage(r),
		})
	}
}

// CategoriesList returns categories for the dashboard. Inactive ones are
// included only when includeInactive=true.
func CategoriesList(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), validators.ParseQueryFlag(r, "includeInactive"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// CategoryGet returns one category with every product, including inactive
// ones, so the dashboard can edit them.
func CategoryGet(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CategoryCreate adds a category attributed to the caller.
func CategoryCreate(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		if identity == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authenticated"))
			return
		}

		var payload category.CreateCategoryInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), identity.ID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// CategoryUpdate applies the supplied fields only.
func CategoryUpdate(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFromContext(r.Context())
		if identity == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authenticated"))
			return
		}

		id, err := validators.PathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload category.UpdateCategoryInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), identity.ID, id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// CategoryDelete removes an empty category. Categories that still hold
// products answer 400.
func CategoryDelete(svc category.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.PathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Category deleted successfully")
	}
}
