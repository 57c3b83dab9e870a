package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/pkg/db/models"
	pkgerrors "github.com/sarayacafe/menu-backend/pkg/errors"
)

// Service exposes category management plus the public menu listing.
type Service interface {
	List(ctx context.Context, includeInactive bool) ([]CategoryDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error)
	Create(ctx context.Context, actorID uuid.UUID, input CreateCategoryInput) (*CategoryDTO, error)
	Update(ctx context.Context, actorID, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPublic(ctx context.Context) ([]PublicCategory, error)
}

type repository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Save(ctx context.Context, category *models.Category) (*models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, includeInactive bool) ([]models.Category, error)
	ListPublic(ctx context.Context) ([]models.Category, error)
	CountProducts(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService constructs a category service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]CategoryDTO, error) {
	records, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return FromModels(records), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	record, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}
	return FromModel(record), nil
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, input CreateCategoryInput) (*CategoryDTO, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	}

	record := &models.Category{
		NameEn:        input.NameEn,
		NameAr:        input.NameAr,
		DescriptionEn: input.DescriptionEn,
		DescriptionAr: input.DescriptionAr,
		ImageURL:      input.ImageURL,
		IsActive:      isActive,
		SortOrder:     sortOrder,
		CreatedByID:   &actorID,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	detail, err := s.repo.FindDetail(ctx, created.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload category")
	}
	return FromModel(detail), nil
}

func (s *service) Update(ctx context.Context, actorID, id uuid.UUID, input UpdateCategoryInput) (*CategoryDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
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
	if input.IsActive != nil {
		record.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		record.SortOrder = *input.SortOrder
	}
	record.UpdatedByID = &actorID

	if _, err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update category")
	}
	detail, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload category")
	}
	return FromModel(detail), nil
}

// Delete refuses to remove a category that still has products; the products
// must be removed or reassigned first.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count products")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "Cannot delete category with existing products. Remove products first.")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

func (s *service) ListPublic(ctx context.Context) ([]PublicCategory, error) {
	records, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list public categories")
	}
	out := make([]PublicCategory, 0, len(records))
	for i := range records {
		out = append(out, publicFromModel(&records[i]))
	}
	return out, nil
}
