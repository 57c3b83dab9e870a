package variation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/pkg/db/models"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
)

func TestCreateRejectsUnknownTypeAndProduct(t *testing.T) {
	repo := newStubRepo()
	products := newStubProducts()
	svc := mustBuildService(t, repo, products)

	_, err := svc.Create(context.Background(), CreateVariationInput{
		ProductID: uuid.New(),
		NameEn:    "Large",
		NameAr:    "كبير",
		Type:      enums.VariationType("GIGANTIC"),
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad type, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateVariationInput{
		ProductID: uuid.New(),
		NameEn:    "Large",
		NameAr:    "كبير",
		Type:      enums.VariationTypeSize,
	})
	appErr = pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing product, got %v", err)
	}
}

func TestCreateDefaultClearsSiblingDefaults(t *testing.T) {
	repo := newStubRepo()
	products := newStubProducts()
	productID := products.seed()
	svc := mustBuildService(t, repo, products)

	existing := repo.seed(&models.ProductVariation{
		ProductID: productID,
		NameEn:    "Small",
		NameAr:    "صغير",
		Type:      enums.VariationTypeSize,
		IsDefault: true,
		IsActive:  true,
	})

	isDefault := true
	created, err := svc.Create(context.Background(), CreateVariationInput{
		ProductID:     productID,
		NameEn:        "Large",
		NameAr:        "كبير",
		Type:          enums.VariationTypeSize,
		PriceModifier: decimal.RequireFromString("2.00"),
		IsDefault:     &isDefault,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsDefault {
		t.Fatal("expected new variation to be the default")
	}
	if repo.records[existing.ID].IsDefault {
		t.Fatal("expected sibling default to be cleared")
	}
}

func TestCreateDefaultRollsBackWhenClearFails(t *testing.T) {
	repo := newStubRepo()
	products := newStubProducts()
	productID := products.seed()
	svc := mustBuildService(t, repo, products)

	existing := repo.seed(&models.ProductVariation{
		ProductID: productID,
		NameEn:    "Small",
		NameAr:    "صغير",
		Type:      enums.VariationTypeSize,
		IsDefault: true,
		IsActive:  true,
	})
	repo.clearDefaultsErr = errors.New("connection reset")

	isDefault := true
	_, err := svc.Create(context.Background(), CreateVariationInput{
		ProductID: productID,
		NameEn:    "Large",
		NameAr:    "كبير",
		Type:      enums.VariationTypeSize,
		IsDefault: &isDefault,
	})
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected the new variation to be rolled back, have %d records", len(repo.records))
	}
	if !repo.records[existing.ID].IsDefault {
		t.Fatal("expected the existing default to survive the rollback")
	}
}

func TestUpdateOnlyTouchesSuppliedFields(t *testing.T) {
	repo := newStubRepo()
	products := newStubProducts()
	productID := products.seed()
	svc := mustBuildService(t, repo, products)

	record := repo.seed(&models.ProductVariation{
		ProductID:     productID,
		NameEn:        "Hot",
		NameAr:        "ساخن",
		Type:          enums.VariationTypeTemperature,
		PriceModifier: decimal.Zero,
		IsActive:      true,
		SortOrder:     2,
	})

	discount := decimal.RequireFromString("-1.50")
	dto, err := svc.Update(context.Background(), record.ID, UpdateVariationInput{
		PriceModifier: &discount,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !dto.PriceModifier.Equal(discount) {
		t.Fatalf("expected negative modifier, got %s", dto.PriceModifier)
	}
	if dto.NameEn != "Hot" || dto.SortOrder != 2 {
		t.Fatal("unsupplied fields should be untouched")
	}
}

func TestDeleteUnknownVariationIsNotFound(t *testing.T) {
	svc := mustBuildService(t, newStubRepo(), newStubProducts())
	err := svc.Delete(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func mustBuildService(t *testing.T, repo *stubRepo, products *stubProducts) Service {
	t.Helper()
	svc, err := NewService(repo, products)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

type stubRepo struct {
	records          map[uuid.UUID]*models.ProductVariation
	clearDefaultsErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: make(map[uuid.UUID]*models.ProductVariation)}
}

func (r *stubRepo) seed(record *models.ProductVariation) *models.ProductVariation {
	record.ID = uuid.New()
	r.records[record.ID] = record
	return record
}

func (r *stubRepo) Create(_ context.Context, record *models.ProductVariation) (*models.ProductVariation, error) {
	return r.seed(record), nil
}

func (r *stubRepo) Save(_ context.Context, record *models.ProductVariation) (*models.ProductVariation, error) {
	if _, ok := r.records[record.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	r.records[record.ID] = record
	return record, nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.ProductVariation, error) {
	if record, ok := r.records[id]; ok {
		return record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]models.ProductVariation, error) {
	var out []models.ProductVariation
	for _, record := range r.records {
		if record.ProductID == productID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *stubRepo) ClearDefaults(_ context.Context, productID uuid.UUID, variationType string, exceptID uuid.UUID) error {
	if r.clearDefaultsErr != nil {
		return r.clearDefaultsErr
	}
	for _, record := range r.records {
		if record.ProductID == productID && string(record.Type) == variationType && record.ID != exceptID {
			record.IsDefault = false
		}
	}
	return nil
}

func (r *stubRepo) WithTransaction(_ context.Context, fn func(repository) error) error {
	snapshot := make(map[uuid.UUID]*models.ProductVariation, len(r.records))
	for id, record := range r.records {
		copied := *record
		snapshot[id] = &copied
	}
	if err := fn(r); err != nil {
		r.records = snapshot
		return err
	}
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

type stubProducts struct {
	known map[uuid.UUID]bool
}

func newStubProducts() *stubProducts {
	return &stubProducts{known: make(map[uuid.UUID]bool)}
}

func (p *stubProducts) seed() uuid.UUID {
	id := uuid.New()
	p.known[id] = true
	return id
}

func (p *stubProducts) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if p.known[id] {
		return &models.Product{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}
