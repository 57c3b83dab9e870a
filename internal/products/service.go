package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/pkg/db"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
	dbtypes "github.com/sarayacafe/menu-backend/pkg/db/types"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
)

// Service exposes product management plus the public featured listing.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Create(ctx context.Context, actorID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListFeatured(ctx context.Context) ([]ProductDTO, error)
}

type categoryLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type service struct {
	repo       *Repository
	dbClient   *db.Client
	categories categoryLoader
}

// NewService constructs a product service.
func NewService(repo *Repository, dbClient *db.Client, categories categoryLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if categories == nil {
		return nil, fmt.Errorf("category loader is required")
	}
	return &service{repo: repo, dbClient: dbClient, categories: categories}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]ProductDTO, error) {
	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(records), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	record, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(record), nil
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	if err := s.ensureCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	isFeatured := false
	if input.IsFeatured != nil {
		isFeatured = *input.IsFeatured
	}
	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}

	record := &models.Product{
		CategoryID:      input.CategoryID,
		NameEn:          input.NameEn,
		NameAr:          input.NameAr,
		DescriptionEn:   input.DescriptionEn,
		DescriptionAr:   input.DescriptionAr,
		ImageURL:        input.ImageURL,
		BasePrice:       input.BasePrice,
		PreparationTime: input.PreparationTime,
		IngredientsEn:   dbtypes.StringList(input.IngredientsEn),
		IngredientsAr:   dbtypes.StringList(input.IngredientsAr),
		Allergens:       dbtypes.StringList(input.Allergens),
		NutritionInfo:   dbtypes.JSONMap(input.NutritionInfo),
		IsActive:        isActive,
		IsFeatured:      isFeatured,
		SortOrder:       sortOrder,
		CreatedByID:     &actorID,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	detail, err := s.repo.FindDetail(ctx, created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	return FromModel(detail), nil
}

func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if input.CategoryID != nil {
		if err := s.ensureCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	applyUpdate(record, input)
	record.UpdatedByID = &actorID

	if _, err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	return FromModel(detail), nil
}

// Delete removes the product and its variations in one transaction so a
// crash mid-sequence cannot leave orphaned variation rows.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeleteVariations(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

func (s *service) ListFeatured(ctx context.Context) ([]ProductDTO, error) {
	records, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list featured products")
	}
	return FromModels(records), nil
}

func (s *service) ensureCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeValidation, "Category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}
	return nil
}

func applyUpdate(record *models.Product, input UpdateProductInput) {
	if input.CategoryID != nil {
		record.CategoryID = *input.CategoryID
	}
	if input.NameEn != nil {
		record.NameEn = *input.NameEn
	}
	if input.NameAr != nil {
		record.NameAr = *input.NameAr
	}
	if input.DescriptionEn != nil {
		record.DescriptionEn = input.DescriptionEn
	}
	if input.DescriptionAr != nil {
		record.DescriptionAr = input.DescriptionAr
	}
	if input.ImageURL != nil {
		record.ImageURL = input.ImageURL
	}
	if input.BasePrice != nil {
		record.BasePrice = *input.BasePrice
	}
	if input.PreparationTime != nil {
		record.PreparationTime = input.PreparationTime
	}
	if input.IngredientsEn != nil {
		record.IngredientsEn = dbtypes.StringList(*input.IngredientsEn)
	}
	if input.IngredientsAr != nil {
		record.IngredientsAr = dbtypes.StringList(*input.IngredientsAr)
	}
	if input.Allergens != nil {
		record.Allergens = dbtypes.StringList(*input.Allergens)
	}
	if input.NutritionInfo != nil {
		record.NutritionInfo = dbtypes.JSONMap(*input.NutritionInfo)
	}
	if input.IsActive != nil {
		record.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		record.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		record.SortOrder = *input.SortOrder
	}
}
