package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	product "github.com/sarayacafe/menu-backend/internal/products"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	"github.com/sarayacafe/menu-backend/pkg/types"
)

type stubProductService struct {
	list       []product.ProductDTO
	detail     *product.ProductDTO
	err        error
	gotFilters product.ListFilters
}

func (s *stubProductService) List(_ context.Context, filters product.ListFilters) ([]product.ProductDTO, error) {
	s.gotFilters = filters
	return s.list, s.err
}

func (s *stubProductService) GetByID(_ context.Context, _ uuid.UUID) (*product.ProductDTO, error) {
	return s.detail, s.err
}

func (s *stubProductService) Create(_ context.Context, _ uuid.UUID, _ product.CreateProductInput) (*product.ProductDTO, error) {
	return s.detail, s.err
}

func (s *stubProductService) Update(_ context.Context, _, _ uuid.UUID, _ product.UpdateProductInput) (*product.ProductDTO, error) {
	return s.detail, s.err
}

func (s *stubProductService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func (s *stubProductService) ListFeatured(_ context.Context) ([]product.ProductDTO, error) {
	return s.list, s.err
}

func TestProductsListForwardsFilters(t *testing.T) {
	svc := &stubProductService{}
	categoryID := uuid.New()

	req := authedRequest(http.MethodGet,
		"/api/products?categoryId="+categoryID.String()+"&includeInactive=true&featured=true",
		"", enums.UserRoleManager)
	rec := httptest.NewRecorder()
	ProductsList(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotFilters.CategoryID == nil || *svc.gotFilters.CategoryID != categoryID {
		t.Fatalf("category filter not forwarded: %+v", svc.gotFilters)
	}
	if !svc.gotFilters.IncludeInactive || !svc.gotFilters.FeaturedOnly {
		t.Fatalf("boolean filters not forwarded: %+v", svc.gotFilters)
	}
}

func TestProductsListRejectsBadCategoryID(t *testing.T) {
	svc := &stubProductService{}
	req := authedRequest(http.MethodGet, "/api/products?categoryId=nope", "", enums.UserRoleManager)
	rec := httptest.NewRecorder()
	ProductsList(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestProductsFeaturedIsPublic(t *testing.T) {
	svc := &stubProductService{list: []product.ProductDTO{{ID: uuid.New(), NameEn: "Karak Tea"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/products/featured", nil)
	rec := httptest.NewRecorder()
	ProductsFeatured(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var envelope struct {
		Success bool                 `json:"success"`
		Data    []product.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].NameEn != "Karak Tea" {
		t.Fatalf("unexpected data %+v", envelope.Data)
	}
}

func TestProductCreateRejectsMissingRequiredFields(t *testing.T) {
	svc := &stubProductService{detail: &product.ProductDTO{}}
	req := authedRequest(http.MethodPost, "/api/products", `{"nameEn":"Latte"}`, enums.UserRoleAdmin)
	rec := httptest.NewRecorder()
	ProductCreate(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestProductCreateAcceptsStringBasePrice(t *testing.T) {
	svc := &stubProductService{detail: &product.ProductDTO{ID: uuid.New()}}
	body := `{"nameEn":"Latte","nameAr":"لاتيه","basePrice":"15.75","categoryId":"` + uuid.NewString() + `"}`
	req := authedRequest(http.MethodPost, "/api/products", body, enums.UserRoleAdmin)
	rec := httptest.NewRecorder()
	ProductCreate(svc, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope types.SuccessEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success=true")
	}
}
