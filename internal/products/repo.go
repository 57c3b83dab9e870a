package product

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/internal/repo"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
)

// Repository exposes product persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// Create inserts a new product.
func (r *Repository) Create(ctx context.Context, record *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Save persists all fields of an existing product.
func (r *Repository) Save(ctx context.Context, record *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads the product without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var record models.Product
	if err := r.DB(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindDetail loads the product with its category, every variation, and
// attribution.
func (r *Repository) FindDetail(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var record models.Product
	err := r.DB(ctx).
		Preload("Category").
		Preload("Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sort_order ASC")
		}).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns products matching the filters with category, active
// variations, and attribution preloaded, in display order.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	query := r.DB(ctx).
		Preload("Category").
		Preload("Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("CreatedBy").
		Preload("UpdatedBy").
		Order("sort_order ASC")

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if !filters.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filters.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var out []models.Product
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListFeatured returns active featured products with their category and
// active variations, in display order.
func (r *Repository) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := r.DB(ctx).
		Where("is_active = ? AND is_featured = ?", true, true).
		Preload("Category").
		Preload("Variations", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteVariations removes every variation belonging to the product.
func (r *Repository) DeleteVariations(ctx context.Context, productID uuid.UUID) error {
	return r.DB(ctx).
		Delete(&models.ProductVariation{}, "product_id = ?", productID).Error
}

// Delete removes the product row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
