package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/pkg/enums"
)

// Order is the header record of a checkout event. Line items carry the
// per-product snapshot.
type Order struct {
	ID              uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          uuid.UUID            `gorm:"column:user_id;type:uuid;not null;index"`
	Status          enums.OrderStatus    `gorm:"column:status;not null;default:'pending'"`
	TotalPrice      decimal.Decimal      `gorm:"column:total_price;type:numeric(10,2);not null"`
	DeliveryOption  enums.DeliveryOption `gorm:"column:delivery_option;not null"`
	DeliveryAddress *string              `gorm:"column:delivery_address"`
	PaymentMethod   enums.PaymentMethod  `gorm:"column:payment_method;not null"`
	CardProvider    *enums.CardProvider  `gorm:"column:card_provider"`
	Items           []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
