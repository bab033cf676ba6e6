package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/pkg/db/models"
	"github.com/tahaxtrex/Scolay/pkg/enums"
)

// Address carries the four delivery fields collected at checkout. The
// persisted delivery_address is their concatenation in this order.
type Address struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// PaymentSelection is the buyer's payment choice. Card selections are
// cosmetic; no charge is taken either way.
type PaymentSelection struct {
	Method       enums.PaymentMethod `json:"method"`
	CardProvider *enums.CardProvider `json:"card_provider,omitempty"`
}

// PlaceOrderInput bundles everything needed to place an order.
type PlaceOrderInput struct {
	UserID   uuid.UUID
	Snapshot cart.Snapshot
	Address  Address
	Payment  PaymentSelection
}

// Receipt is returned once the order and all its line items are
// committed.
type Receipt struct {
	OrderID    uuid.UUID         `json:"order_id"`
	Status     enums.OrderStatus `json:"status"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	ItemCount  int               `json:"item_count"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Summary is one row in a user's order history.
type Summary struct {
	ID         uuid.UUID         `json:"id"`
	Status     enums.OrderStatus `json:"status"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	ItemCount  int               `json:"item_count"`
	CreatedAt  time.Time         `json:"created_at"`
}

// List wraps the paginated order history plus the next page cursor.
type List struct {
	Orders     []Summary `json:"orders"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

// Detail is the full order view including its line items.
type Detail struct {
	Order models.Order       `json:"order"`
	Items []models.OrderItem `json:"items"`
}
