package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarayacafe/menu-backend/internal/users"
	variation "github.com/sarayacafe/menu-backend/internal/variations"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
	dbtypes "github.com/sarayacafe/menu-backend/pkg/db/types"
)

// CategorySummary is the compact parent shape embedded in product responses.
type CategorySummary struct {
	ID            uuid.UUID `json:"id"`
	NameEn        string    `json:"nameEn"`
	NameAr        string    `json:"nameAr"`
	DescriptionEn *string   `json:"descriptionEn"`
	DescriptionAr *string   `json:"descriptionAr"`
}

// ProductDTO is the admin-facing product shape. List-valued fields are always
// native arrays, never the encoded storage text.
type ProductDTO struct {
	ID              uuid.UUID                `json:"id"`
	CategoryID      uuid.UUID                `json:"categoryId"`
	NameEn          string                   `json:"nameEn"`
	NameAr          string                   `json:"nameAr"`
	DescriptionEn   *string                  `json:"descriptionEn"`
	DescriptionAr   *string                  `json:"descriptionAr"`
	ImageURL        *string                  `json:"imageUrl"`
	BasePrice       decimal.Decimal          `json:"basePrice"`
	PreparationTime *string                  `json:"preparationTime"`
	IngredientsEn   dbtypes.StringList       `json:"ingredientsEn"`
	IngredientsAr   dbtypes.StringList       `json:"ingredientsAr"`
	Allergens       dbtypes.StringList       `json:"allergens"`
	NutritionInfo   dbtypes.JSONMap          `json:"nutritionInfo"`
	IsActive        bool                     `json:"isActive"`
	IsFeatured      bool                     `json:"isFeatured"`
	SortOrder       int                      `json:"sortOrder"`
	Category        *CategorySummary         `json:"category,omitempty"`
	Variations      []variation.VariationDTO `json:"variations,omitempty"`
	CreatedBy       *users.UserSummary       `json:"createdBy,omitempty"`
	UpdatedBy       *users.UserSummary       `json:"updatedBy,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// CreateProductInput holds the validated payload to create a product.
// BasePrice accepts either a JSON number or a numeric string.
type CreateProductInput struct {
	CategoryID      uuid.UUID       `json:"categoryId" validate:"required"`
	NameEn          string          `json:"nameEn" validate:"required"`
	NameAr          string          `json:"nameAr" validate:"required"`
	DescriptionEn   *string         `json:"descriptionEn"`
	DescriptionAr   *string         `json:"descriptionAr"`
	ImageURL        *string         `json:"imageUrl"`
	BasePrice       decimal.Decimal `json:"basePrice" validate:"required"`
	PreparationTime *string         `json:"preparationTime"`
	IngredientsEn   []string        `json:"ingredientsEn"`
	IngredientsAr   []string        `json:"ingredientsAr"`
	Allergens       []string        `json:"allergens"`
	NutritionInfo   map[string]any  `json:"nutritionInfo"`
	IsActive        *bool           `json:"isActive"`
	IsFeatured      *bool           `json:"isFeatured"`
	SortOrder       *int            `json:"sortOrder"`
}

// UpdateProductInput holds optional mutation values; only supplied fields
// are changed.
type UpdateProductInput struct {
	CategoryID      *uuid.UUID       `json:"categoryId"`
	NameEn          *string          `json:"nameEn"`
	NameAr          *string          `json:"nameAr"`
	DescriptionEn   *string          `json:"descriptionEn"`
	DescriptionAr   *string          `json:"descriptionAr"`
	ImageURL        *string          `json:"imageUrl"`
	BasePrice       *decimal.Decimal `json:"basePrice"`
	PreparationTime *string          `json:"preparationTime"`
	IngredientsEn   *[]string        `json:"ingredientsEn"`
	IngredientsAr   *[]string        `json:"ingredientsAr"`
	Allergens       *[]string        `json:"allergens"`
	NutritionInfo   *map[string]any  `json:"nutritionInfo"`
	IsActive        *bool            `json:"isActive"`
	IsFeatured      *bool            `json:"isFeatured"`
	SortOrder       *int             `json:"sortOrder"`
}

// ListFilters describe the supported filter knobs for the admin listing.
type ListFilters struct {
	CategoryID      *uuid.UUID
	IncludeInactive bool
	FeaturedOnly    bool
}

// FromModel maps a product with whatever associations were preloaded.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		NameEn:          p.NameEn,
		NameAr:          p.NameAr,
		DescriptionEn:   p.DescriptionEn,
		DescriptionAr:   p.DescriptionAr,
		ImageURL:        p.ImageURL,
		BasePrice:       p.BasePrice,
		PreparationTime: p.PreparationTime,
		IngredientsEn:   p.IngredientsEn,
		IngredientsAr:   p.IngredientsAr,
		Allergens:       p.Allergens,
		NutritionInfo:   p.NutritionInfo,
		IsActive:        p.IsActive,
		IsFeatured:      p.IsFeatured,
		SortOrder:       p.SortOrder,
		CreatedBy:       users.SummaryFromModel(p.CreatedBy),
		UpdatedBy:       users.SummaryFromModel(p.UpdatedBy),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Category != nil {
		dto.Category = &CategorySummary{
			ID:            p.Category.ID,
			NameEn:        p.Category.NameEn,
			NameAr:        p.Category.NameAr,
			DescriptionEn: p.Category.DescriptionEn,
			DescriptionAr: p.Category.DescriptionAr,
		}
	}
	if len(p.Variations) > 0 {
		dto.Variations = variation.FromModels(p.Variations)
	}
	return dto
}

func FromModels(records []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}
