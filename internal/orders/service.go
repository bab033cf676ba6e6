package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
	"github.com/tahaxtrex/Scolay/pkg/enums"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service executes order placement and exposes order history reads.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Receipt, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID, page Page) (*List, error)
	GetOrderDetail(ctx context.Context, userID, orderID uuid.UUID) (*Detail, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds the orders service.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// PlaceOrder validates the checkout inputs and writes the order header
// plus all of its line items in a single transaction. Either the whole
// order lands or nothing does; an item-stage failure surfaces as
// PARTIAL_COMMIT so callers can tell which write step broke.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Receipt, error) {
	if err := validatePlaceOrder(input); err != nil {
		return nil, err
	}

	deliveryAddress := formatDeliveryAddress(input.Address)

	var created *models.Order
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order := &models.Order{
			UserID:          input.UserID,
			Status:          enums.OrderStatusPending,
			TotalPrice:      input.Snapshot.TotalPrice,
			DeliveryOption:  enums.DeliveryOptionDelivery,
			DeliveryAddress: &deliveryAddress,
			PaymentMethod:   input.Payment.Method,
			CardProvider:    input.Payment.CardProvider,
		}
		order, err := repo.CreateOrder(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating order header")
		}

		items := make([]models.OrderItem, len(input.Snapshot.Lines))
		for i, line := range input.Snapshot.Lines {
			items[i] = models.OrderItem{
				OrderID:         order.ID,
				ProductID:       line.ProductID,
				Quantity:        line.SelectedQuantity,
				PriceAtPurchase: line.Price,
			}
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			// the surrounding tx rolls the header back too
			return pkgerrors.Wrap(pkgerrors.CodePartialCommit, err, "creating order line items")
		}

		created = order
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "placing order")
	}

	return &Receipt{
		OrderID:    created.ID,
		Status:     created.Status,
		TotalPrice: created.TotalPrice,
		ItemCount:  input.Snapshot.ItemCount,
		CreatedAt:  created.CreatedAt,
	}, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID uuid.UUID, page Page) (*List, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	rows, nextCursor, err := s.repo.ListOrdersByUser(ctx, userID, page)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}

	list := &List{
		Orders:     make([]Summary, len(rows)),
		NextCursor: nextCursor,
	}
	for i, row := range rows {
		itemCount := 0
		for _, item := range row.Items {
			itemCount += item.Quantity
		}
		list.Orders[i] = Summary{
			ID:         row.ID,
			Status:     row.Status,
			TotalPrice: row.TotalPrice,
			ItemCount:  itemCount,
			CreatedAt:  row.CreatedAt,
		}
	}
	return list, nil
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uuid.UUID) (*Detail, error) {
	order, err := s.repo.FindOrderWithItems(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding order")
	}
	// an order only exists for its owner as far as the API is concerned
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	return &Detail{Order: *order, Items: order.Items}, nil
}

func validatePlaceOrder(input PlaceOrderInput) error {
	if input.UserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if len(input.Snapshot.Lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	missing := []string{}
	if strings.TrimSpace(input.Address.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(input.Address.Street) == "" {
		missing = append(missing, "street")
	}
	if strings.TrimSpace(input.Address.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(input.Address.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "address is incomplete").
			WithDetails(map[string]any{"missing_fields": missing})
	}

	if !input.Payment.Method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment method is required")
	}
	if input.Payment.Method == enums.PaymentMethodCard {
		if input.Payment.CardProvider == nil || !input.Payment.CardProvider.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "card provider is required for card payments")
		}
	}
	return nil
}

func formatDeliveryAddress(addr Address) string {
	return fmt.Sprintf("%s, %s, %s, %s",
		strings.TrimSpace(addr.FullName),
		strings.TrimSpace(addr.Street),
		strings.TrimSpace(addr.City),
		strings.TrimSpace(addr.PostalCode),
	)
}
