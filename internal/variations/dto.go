package variation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarayacafe/menu-backend/pkg/db/models"
	"github.com/sarayacafe/menu-backend/pkg/enums"
)

// VariationDTO is the transport shape for a product option.
type VariationDTO struct {
	ID            uuid.UUID           `json:"id"`
	ProductID     uuid.UUID           `json:"productId"`
	NameEn        string              `json:"nameEn"`
	NameAr        string              `json:"nameAr"`
	Type          enums.VariationType `json:"type"`
	PriceModifier decimal.Decimal     `json:"priceModifier"`
	IsDefault     bool                `json:"isDefault"`
	IsActive      bool                `json:"isActive"`
	SortOrder     int                 `json:"sortOrder"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CreateVariationInput holds the validated payload to create a variation.
type CreateVariationInput struct {
	ProductID     uuid.UUID           `json:"productId" validate:"required"`
	NameEn        string              `json:"nameEn" validate:"required"`
	NameAr        string              `json:"nameAr" validate:"required"`
	Type          enums.VariationType `json:"type" validate:"required"`
	PriceModifier decimal.Decimal     `json:"priceModifier"`
	IsDefault     *bool               `json:"isDefault"`
	IsActive      *bool               `json:"isActive"`
	SortOrder     *int                `json:"sortOrder"`
}

// UpdateVariationInput holds optional mutation values; only supplied fields
// are changed.
type UpdateVariationInput struct {
	NameEn        *string              `json:"nameEn"`
	NameAr        *string              `json:"nameAr"`
	Type          *enums.VariationType `json:"type"`
	PriceModifier *decimal.Decimal     `json:"priceModifier"`
	IsDefault     *bool                `json:"isDefault"`
	IsActive      *bool                `json:"isActive"`
	SortOrder     *int                 `json:"sortOrder"`
}

func FromModel(v *models.ProductVariation) *VariationDTO {
	if v == nil {
		return nil
	}
	return &VariationDTO{
		ID:            v.ID,
		ProductID:     v.ProductID,
		NameEn:        v.NameEn,
		NameAr:        v.NameAr,
		Type:          v.Type,
		PriceModifier: v.PriceModifier,
		IsDefault:     v.IsDefault,
		IsActive:      v.IsActive,
		SortOrder:     v.SortOrder,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromModels(records []models.ProductVariation) []VariationDTO {
	out := make([]VariationDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
