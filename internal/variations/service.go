package variation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/pkg/db/models"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
)

// Service exposes variation management operations.
type Service interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]VariationDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VariationDTO, error)
	Create(ctx context.Context, input CreateVariationInput) (*VariationDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVariationInput) (*VariationDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, record *models.ProductVariation) (*models.ProductVariation, error)
	Save(ctx context.Context, record *models.ProductVariation) (*models.ProductVariation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ProductVariation, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductVariation, error)
	ClearDefaults(ctx context.Context, productID uuid.UUID, variationType string, exceptID uuid.UUID) error
	WithTransaction(ctx context.Context, fn func(repository) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     repository
	products productLoader
}

// NewService constructs a variation service.
func NewService(repo repository, products productLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("variation repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader is required")
	}
	return &service{repo: repo, products: products}, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]VariationDTO, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	records, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list variations")
	}
	return FromModels(records), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*VariationDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Variation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variation")
	}
	return FromModel(record), nil
}

func (s *service) Create(ctx context.Context, input CreateVariationInput) (*VariationDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid variation type")
	}
	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	isDefault := false
	if input.IsDefault != nil {
		isDefault = *input.IsDefault
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}

	record := &models.ProductVariation{
		ProductID:     input.ProductID,
		NameEn:        input.NameEn,
		NameAr:        input.NameAr,
		Type:          input.Type,
		PriceModifier: input.PriceModifier,
		IsDefault:     isDefault,
		IsActive:      isActive,
		SortOrder:     sortOrder,
	}
	created, err := s.persistDefaultAware(ctx, record, func(txRepo repository) (*models.ProductVariation, error) {
		return txRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create variation")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateVariationInput) (*VariationDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Variation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variation")
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid variation type")
		}
		record.Type = *input.Type
	}
	if input.NameEn != nil {
		record.NameEn = *input.NameEn
	}
	if input.NameAr != nil {
		record.NameAr = *input.NameAr
	}
	if input.PriceModifier != nil {
		record.PriceModifier = *input.PriceModifier
	}
	if input.IsDefault != nil {
		record.IsDefault = *input.IsDefault
	}
	if input.IsActive != nil {
		record.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		record.SortOrder = *input.SortOrder
	}

	saved, err := s.persistDefaultAware(ctx, record, func(txRepo repository) (*models.ProductVariation, error) {
		return txRepo.Save(ctx, record)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update variation")
	}
	return FromModel(saved), nil
}

// persistDefaultAware writes the record via persist. When the record is the
// group default, the write and the sibling-default clear run in one
// transaction so a failure can never leave two defaults in a
// {product, type} group.
func (s *service) persistDefaultAware(ctx context.Context, record *models.ProductVariation, persist func(repository) (*models.ProductVariation, error)) (*models.ProductVariation, error) {
	if !record.IsDefault {
		return persist(s.repo)
	}
	var out *models.ProductVariation
	err := s.repo.WithTransaction(ctx, func(txRepo repository) error {
		written, err := persist(txRepo)
		if err != nil {
			return err
		}
		if err := txRepo.ClearDefaults(ctx, written.ProductID, string(written.Type), written.ID); err != nil {
			return err
		}
		out = written
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Variation not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load variation")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete variation")
	}
	return nil
}
