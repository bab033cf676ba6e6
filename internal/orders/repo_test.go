package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/pkg/config"
	pkgdb "github.com/tahaxtrex/Scolay/pkg/db"
	"github.com/tahaxtrex/Scolay/pkg/db/models"
	"github.com/tahaxtrex/Scolay/pkg/enums"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

func setupOrdersTestDB(t *testing.T) *pkgdb.Client {
	t.Helper()

	client, err := pkgdb.New(context.Background(), config.DBConfig{
		DSN:    "file::memory:",
		Driver: "sqlite",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  total_price NUMERIC NOT NULL,
  delivery_option TEXT NOT NULL,
  delivery_address TEXT,
  payment_method TEXT NOT NULL,
  card_provider TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  price_at_purchase NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, client.DB().Exec(ordersTable).Error)
	require.NoError(t, client.DB().Exec(orderItems).Error)
	return client
}

func seedOrder(t *testing.T, repo Repository, userID uuid.UUID, total int64, createdAt time.Time) *models.Order {
	t.Helper()
	order, err := repo.CreateOrder(context.Background(), &models.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         enums.OrderStatusPending,
		TotalPrice:     decimal.NewFromInt(total),
		DeliveryOption: enums.DeliveryOptionDelivery,
		PaymentMethod:  enums.PaymentMethodCash,
		CreatedAt:      createdAt,
	})
	require.NoError(t, err)
	return order
}

func TestRepositoryCreateAndFindOrder(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	userID := uuid.New()
	order := seedOrder(t, repo, userID, 55, time.Now().UTC())

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Quantity: 3, PriceAtPurchase: decimal.NewFromInt(5)},
		{ID: uuid.New(), OrderID: order.ID, ProductID: uuid.New(), Quantity: 2, PriceAtPurchase: decimal.NewFromInt(20)},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, items))

	found, err := repo.FindOrderWithItems(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
	require.Len(t, found.Items, 2)
	assert.True(t, found.TotalPrice.Equal(decimal.NewFromInt(55)))
}

func TestRepositoryListOrdersByUserPaginates(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	userID := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedOrder(t, repo, userID, int64(10+i), base.Add(time.Duration(i)*time.Minute))
	}
	// another user's order must not leak in
	seedOrder(t, repo, uuid.New(), 99, base)

	page1, cursor, err := repo.ListOrdersByUser(ctx, userID, Page{Limit: 3})
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.NotEmpty(t, cursor)
	// newest first
	assert.True(t, page1[0].CreatedAt.After(page1[1].CreatedAt))

	page2, cursor2, err := repo.ListOrdersByUser(ctx, userID, Page{Limit: 3, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Empty(t, cursor2)

	seen := map[uuid.UUID]bool{}
	for _, o := range append(page1, page2...) {
		require.False(t, seen[o.ID], "order %s returned twice", o.ID)
		seen[o.ID] = true
	}

	_, _, err = repo.ListOrdersByUser(ctx, userID, Page{Cursor: "not a cursor"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestPlaceOrderPersistsAtomically(t *testing.T) {
	client := setupOrdersTestDB(t)
	repo := NewRepository(client.DB())
	svc, err := NewService(repo, client)
	require.NoError(t, err)

	userID := uuid.New()
	pencil := uuid.New()
	notebook := uuid.New()
	receipt, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		UserID: userID,
		Snapshot: cart.Snapshot{
			Lines: []cart.Line{
				{ProductID: pencil, Name: "Pencil", Price: decimal.NewFromInt(5), SelectedQuantity: 3},
				{ProductID: notebook, Name: "Notebook", Price: decimal.NewFromInt(20), SelectedQuantity: 2},
			},
			ItemCount:  5,
			TotalPrice: decimal.NewFromInt(55),
		},
		Address: Address{
			FullName:   "Amina Berrada",
			Street:     "12 Rue des Ecoles",
			City:       "Casablanca",
			PostalCode: "20000",
		},
		Payment: PaymentSelection{Method: enums.PaymentMethodCash},
	})
	require.NoError(t, err)

	found, err := repo.FindOrderWithItems(context.Background(), receipt.OrderID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.True(t, found.TotalPrice.Equal(decimal.NewFromInt(55)))

	var count int64
	require.NoError(t, client.DB().Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = repo.FindOrderWithItems(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
