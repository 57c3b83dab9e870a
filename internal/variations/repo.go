package variation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/internal/repo"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
)

// Repository exposes variation persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTransaction runs fn against a repository bound to a single
// transaction, rolling back when fn returns an error.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repository) error) error {
	return r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// Create inserts a new variation.
func (r *Repository) Create(ctx context.Context, record *models.ProductVariation) (*models.ProductVariation, error) {
	if err := r.DB(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Save persists all fields of an existing variation.
func (r *Repository) Save(ctx context.Context, record *models.ProductVariation) (*models.ProductVariation, error) {
	if err := r.DB(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads a variation by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ProductVariation, error) {
	var record models.ProductVariation
	if err := r.DB(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByProduct returns every variation of a product in display order.
func (r *Repository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductVariation, error) {
	var out []models.ProductVariation
	err := r.DB(ctx).
		Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearDefaults unsets is_default on sibling variations of the same type,
// keeping at most one default per {product, type} group.
func (r *Repository) ClearDefaults(ctx context.Context, productID uuid.UUID, variationType string, exceptID uuid.UUID) error {
	return r.DB(ctx).
		Model(&models.ProductVariation{}).
		Where("product_id = ? AND type = ? AND id <> ?", productID, variationType, exceptID).
		Update("is_default", false).Error
}

// Delete removes the variation row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.ProductVariation{}, "id = ?", id).Error
}
