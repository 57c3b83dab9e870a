package category

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	product "github.com/sarayacafe/menu-backend/internal/products"
	"github.com/sarayacafe/menu-backend/internal/users"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
	dbtypes "github.com/sarayacafe/menu-backend/pkg/db/types"
	"github.com/sarayacafe/menu-backend/pkg/enums"
)

// CategoryDTO is the admin-facing category shape with nested products and
// attribution.
type CategoryDTO struct {
	ID            uuid.UUID            `json:"id"`
	NameEn        string               `json:"nameEn"`
	NameAr        string               `json:"nameAr"`
	DescriptionEn *string              `json:"descriptionEn"`
	DescriptionAr *string              `json:"descriptionAr"`
	ImageURL      *string              `json:"imageUrl"`
	IsActive      bool                 `json:"isActive"`
	SortOrder     int                  `json:"sortOrder"`
	Products      []product.ProductDTO `json:"products,omitempty"`
	CreatedBy     *users.UserSummary   `json:"createdBy,omitempty"`
	UpdatedBy     *users.UserSummary   `json:"updatedBy,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// CreateCategoryInput holds the validated payload to create a category.
type CreateCategoryInput struct {
	NameEn        string  `json:"nameEn" validate:"required"`
	NameAr        string  `json:"nameAr" validate:"required"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	ImageURL      *string `json:"imageUrl"`
	IsActive      *bool   `json:"isActive"`
	SortOrder     *int    `json:"sortOrder"`
}

// UpdateCategoryInput holds optional mutation values; only supplied fields
// are changed.
type UpdateCategoryInput struct {
	NameEn        *string `json:"nameEn"`
	NameAr        *string `json:"nameAr"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionAr *string `json:"descriptionAr"`
	ImageURL      *string `json:"imageUrl"`
	IsActive      *bool   `json:"isActive"`
	SortOrder     *int    `json:"sortOrder"`
}

// PublicCategory is the trimmed shape served to the public menu. It carries
// no attribution and no inactive content.
type PublicCategory struct {
	ID            uuid.UUID       `json:"id"`
	NameEn        string          `json:"nameEn"`
	NameAr        string          `json:"nameAr"`
	DescriptionEn *string         `json:"descriptionEn"`
	DescriptionAr *string         `json:"descriptionAr"`
	ImageURL      *string         `json:"imageUrl"`
	SortOrder     int             `json:"sortOrder"`
	Products      []PublicProduct `json:"products"`
}

// PublicProduct mirrors the public menu product selection.
type PublicProduct struct {
	ID              uuid.UUID          `json:"id"`
	NameEn          string             `json:"nameEn"`
	NameAr          string             `json:"nameAr"`
	DescriptionEn   *string            `json:"descriptionEn"`
	DescriptionAr   *string            `json:"descriptionAr"`
	BasePrice       decimal.Decimal    `json:"basePrice"`
	ImageURL        *string            `json:"imageUrl"`
	PreparationTime *string            `json:"preparationTime"`
	IngredientsEn   dbtypes.StringList `json:"ingredientsEn"`
	IngredientsAr   dbtypes.StringList `json:"ingredientsAr"`
	Allergens       dbtypes.StringList `json:"allergens"`
	Variations      []PublicVariation  `json:"variations"`
}

// PublicVariation exposes the selectable option without lifecycle fields.
type PublicVariation struct {
	ID            uuid.UUID           `json:"id"`
	NameEn        string              `json:"nameEn"`
	NameAr        string              `json:"nameAr"`
	Type          enums.VariationType `json:"type"`
	PriceModifier decimal.Decimal     `json:"priceModifier"`
	IsDefault     bool                `json:"isDefault"`
}

// FromModel maps a category with its preloaded associations.
func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	dto := &CategoryDTO{
		ID:            c.ID,
		NameEn:        c.NameEn,
		NameAr:        c.NameAr,
		DescriptionEn: c.DescriptionEn,
		DescriptionAr: c.DescriptionAr,
		ImageURL:      c.ImageURL,
		IsActive:      c.IsActive,
		SortOrder:     c.SortOrder,
		CreatedBy:     users.SummaryFromModel(c.CreatedBy),
		UpdatedBy:     users.SummaryFromModel(c.UpdatedBy),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if len(c.Products) > 0 {
		dto.Products = product.FromModels(c.Products)
	}
	return dto
}

func FromModels(records []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(records))
	for i := range records {
		out = append(out, *FromModel(&records[i]))
	}
	return out
}

func publicFromModel(c *models.Category) PublicCategory {
	products := make([]PublicProduct, 0, len(c.Products))
	for i := range c.Products {
		p := &c.Products[i]
		variations := make([]PublicVariation, 0, len(p.Variations))
		for _, v := range p.Variations {
			variations = append(variations, PublicVariation{
				ID:            v.ID,
				NameEn:        v.NameEn,
				NameAr:        v.NameAr,
				Type:          v.Type,
				PriceModifier: v.PriceModifier,
				IsDefault:     v.IsDefault,
			})
		}
		products = append(products, PublicProduct{
			ID:              p.ID,
			NameEn:          p.NameEn,
			NameAr:          p.NameAr,
			DescriptionEn:   p.DescriptionEn,
			DescriptionAr:   p.DescriptionAr,
			BasePrice:       p.BasePrice,
			ImageURL:        p.ImageURL,
			PreparationTime: p.PreparationTime,
			IngredientsEn:   p.IngredientsEn,
			IngredientsAr:   p.IngredientsAr,
			Allergens:       p.Allergens,
			Variations:      variations,
		})
	}
	return PublicCategory{
		ID:            c.ID,
		NameEn:        c.NameEn,
		NameAr:        c.NameAr,
		DescriptionEn: c.DescriptionEn,
		DescriptionAr: c.DescriptionAr,
		ImageURL:      c.ImageURL,
		SortOrder:     c.SortOrder,
		Products:      products,
	}
}
