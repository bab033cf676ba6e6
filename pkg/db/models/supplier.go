package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a merchant whose products can appear on supply lists.
type Supplier struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Description  *string   `gorm:"column:description"`
	LogoURL      *string   `gorm:"column:logo_url"`
	ContactEmail *string   `gorm:"column:contact_email"`
	ContactPhone *string   `gorm:"column:contact_phone"`
	Products     []Product `gorm:"foreignKey:SupplierID"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
