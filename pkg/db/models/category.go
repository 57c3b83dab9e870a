package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the menu. Names are stored per language so the
// public surface can serve either locale without a join.
type Category struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	NameEn        string     `gorm:"column:name_en;not null"`
	NameAr        string     `gorm:"column:name_ar;not null"`
	DescriptionEn *string    `gorm:"column:description_en"`
	DescriptionAr *string    `gorm:"column:description_ar"`
	ImageURL      *string    `gorm:"column:image_url"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true"`
	SortOrder     int        `gorm:"column:sort_order;not null;default:0"`
	CreatedByID   *uuid.UUID `gorm:"column:created_by_id;type:uuid"`
	UpdatedByID   *uuid.UUID `gorm:"column:updated_by_id;type:uuid"`
	CreatedBy     *User      `gorm:"foreignKey:CreatedByID"`
	UpdatedBy     *User      `gorm:"foreignKey:UpdatedByID"`
	Products      []Product  `gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
