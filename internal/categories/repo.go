package category

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/internal/repo"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
)

// Repository exposes category persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new category.
func (r *Repository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Save persists all fields of an existing category.
func (r *Repository) Save(ctx context.Context, category *models.Category) (*models.Category, error) {
	if err := r.DB(ctx).Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// FindByID loads the category without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindDetail loads the category with all its products, their active
// variations, and attribution.
func (r *Repository) FindDetail(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.DB(ctx).
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Preload("Products.Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns categories with active products and variations nested,
// ordered for display. Inactive categories are included on demand.
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	query := r.DB(ctx).
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("Products.Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Order("sort_order ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var out []models.Category
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListPublic returns active categories with their active products and
// variations, ordered for menu display.
func (r *Repository) ListPublic(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := r.DB(ctx).
		Where("is_active = ?", true).
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("Products.Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountProducts reports how many products reference the category.
func (r *Repository) CountProducts(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&count).Error
	return count, err
}

// Delete removes the category row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Category{}, "id = ?", id).Error
}
