package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/sarayacafe/menu-backend/pkg/enums"
)

// User represents a staff account with access to the management surface.
type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password    string         `gorm:"column:password;not null"`
	FirstName   string         `gorm:"column:first_name;not null"`
	LastName    string         `gorm:"column:last_name;not null"`
	Role        enums.UserRole `gorm:"column:role;type:text;not null;default:MANAGER"`
	IsActive    bool           `gorm:"column:is_active;not null;default:true"`
	LastLoginAt *time.Time     `gorm:"column:last_login"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
