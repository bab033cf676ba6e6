package models

import (
	"time"

	"github.com/google/uuid"
)

// SupplyListItem joins a supply list to a product with the required
// quantity.
type SupplyListItem struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SupplyListID uuid.UUID `gorm:"column:supply_list_id;type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity     int       `gorm:"column:quantity;not null;default:1"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
