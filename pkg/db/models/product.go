package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/sarayacafe/menu-backend/pkg/db/types"
)

// Product is a single menu item inside a category. List-valued fields are
// stored as JSON text and decoded at the API boundary.
type Product struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID      uuid.UUID          `gorm:"column:category_id;type:uuid;not null;index"`
	NameEn          string             `gorm:"column:name_en;not null"`
	NameAr          string             `gorm:"column:name_ar;not null"`
	DescriptionEn   *string            `gorm:"column:description_en"`
	DescriptionAr   *string            `gorm:"column:description_ar"`
	ImageURL        *string            `gorm:"column:image_url"`
	BasePrice       decimal.Decimal    `gorm:"column:base_price;type:numeric(10,2);not null"`
	PreparationTime *string            `gorm:"column:preparation_time"`
	IngredientsEn   dbtypes.StringList `gorm:"column:ingredients_en;type:text;not null;default:'[]'"`
	IngredientsAr   dbtypes.StringList `gorm:"column:ingredients_ar;type:text;not null;default:'[]'"`
	Allergens       dbtypes.StringList `gorm:"column:allergens;type:text;not null;default:'[]'"`
	NutritionInfo   dbtypes.JSONMap    `gorm:"column:nutrition_info;type:text"`
	IsActive        bool               `gorm:"column:is_active;not null;default:true"`
	IsFeatured      bool               `gorm:"column:is_featured;not null;default:false"`
	SortOrder       int                `gorm:"column:sort_order;not null;default:0"`
	CreatedByID     *uuid.UUID         `gorm:"column:created_by_id;type:uuid"`
	UpdatedByID     *uuid.UUID         `gorm:"column:updated_by_id;type:uuid"`
	CreatedBy       *User              `gorm:"foreignKey:CreatedByID"`
	UpdatedBy       *User              `gorm:"foreignKey:UpdatedByID"`
	Category        *Category          `gorm:"foreignKey:CategoryID"`
	Variations      []ProductVariation `gorm:"foreignKey:ProductID"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
