package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarayacafe/menu-backend/pkg/enums"
)

// ProductVariation is a selectable option on a product (size, temperature,
// extras). PriceModifier is added to the product's base price and may be
// negative.
type ProductVariation struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID     uuid.UUID           `gorm:"column:product_id;type:uuid;not null;index"`
	NameEn        string              `gorm:"column:name_en;not null"`
	NameAr        string              `gorm:"column:name_ar;not null"`
	Type          enums.VariationType `gorm:"column:type;type:text;not null"`
	PriceModifier decimal.Decimal     `gorm:"column:price_modifier;type:numeric(10,2);not null;default:0"`
	IsDefault     bool                `gorm:"column:is_default;not null;default:false"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true"`
	SortOrder     int                 `gorm:"column:sort_order;not null;default:0"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
