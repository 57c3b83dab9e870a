package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	category "github.com/sarayacafe/menu-backend/internal/categories"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
	"github.com/sarayacafe/menu-backend/pkg/types"
)

type stubCategoryService struct {
	list         []category.CategoryDTO
	detail       *category.CategoryDTO
	publicList   []category.PublicCategory
	err          error
	gotInactive  bool
	deletedID    uuid.UUID
	createdInput category.CreateCategoryInput
}

func (s *stubCategoryService) List(_ context.Context, includeInactive bool) ([]category.CategoryDTO, error) {
	s.gotInactive = includeInactive
	return s.list, s.err
}

func (s *stubCategoryService) GetByID(_ context.Context, _ uuid.UUID) (*category.CategoryDTO, error) {
	return s.detail, s.err
}

func (s *stubCategoryService) Create(_ context.Context, _ uuid.UUID, input category.CreateCategoryInput) (*category.CategoryDTO, error) {
	s.createdInput = input
	return s.detail, s.err
}

func (s *stubCategoryService) Update(_ context.Context, _, _ uuid.UUID, _ category.UpdateCategoryInput) (*category.CategoryDTO, error) {
	return s.detail, s.err
}

func (s *stubCategoryService) Delete(_ context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

func (s *stubCategoryService) ListPublic(_ context.Context) ([]category.PublicCategory, error) {
	return s.publicList, s.err
}

func TestCategoriesPublicEchoesLanguage(t *testing.T) {
	svc := &stubCategoryService{publicList: []category.PublicCategory{{
		ID:     uuid.New(),
		NameEn: "Hot Drinks",
		NameAr: "مشروبات ساخنة",
	}}}

	for query, want := range map[string]string{"": "ar", "?lang=en": "en", "?lang=xx": "xx"} {
		req := httptest.NewRequest(http.MethodGet, "/api/categories/public"+query, nil)
		rec := httptest.NewRecorder()
		CategoriesPublic(svc, nil).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", rec.Code)
		}
		var envelope struct {
			Success  bool                      `json:"success"`
			Data     []category.PublicCategory `json:"data"`
			Language string                    `json:"language"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if envelope.Language != want {
			t.Fatalf("query %q: expected language %q got %q", query, want, envelope.Language)
		}
		if len(envelope.Data) != 1 || envelope.Data[0].NameAr != "مشروبات ساخنة" {
			t.Fatalf("unexpected data %+v", envelope.Data)
		}
	}
}

func TestCategoriesListForwardsIncludeInactive(t *testing.T) {
	svc := &stubCategoryService{}
	req := authedRequest(http.MethodGet, "/api/categories?includeInactive=true", "", enums.UserRoleManager)
	rec := httptest.NewRecorder()
	CategoriesList(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.gotInactive {
		t.Fatal("includeInactive=true should reach the service")
	}
}

func TestCategoryCreateRequiresBothNames(t *testing.T) {
	svc := &stubCategoryService{detail: &category.CategoryDTO{}}
	req := authedRequest(http.MethodPost, "/api/categories", `{"nameEn":"Drinks"}`, enums.UserRoleAdmin)
	rec := httptest.NewRecorder()
	CategoryCreate(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryDeleteBlockedWhileProductsExist(t *testing.T) {
	svc := &stubCategoryService{err: pkgerrors.New(pkgerrors.CodeConflict,
		"Cannot delete category with existing products. Remove products first.")}

	router := chi.NewRouter()
	router.Delete("/api/categories/{id}", CategoryDelete(svc, nil))

	req := authedRequest(http.MethodDelete, "/api/categories/"+uuid.NewString(), "", enums.UserRoleAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	var body types.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Cannot delete category with existing products. Remove products first." {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCategoryDeleteSuccessMessage(t *testing.T) {
	svc := &stubCategoryService{}
	id := uuid.New()

	router := chi.NewRouter()
	router.Delete("/api/categories/{id}", CategoryDelete(svc, nil))

	req := authedRequest(http.MethodDelete, "/api/categories/"+id.String(), "", enums.UserRoleAdmin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.deletedID != id {
		t.Fatalf("expected delete of %s, got %s", id, svc.deletedID)
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Message != "Category deleted successfully" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}
}
