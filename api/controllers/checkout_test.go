package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/api/middleware"
	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/internal/orders"
	"github.com/tahaxtrex/Scolay/pkg/enums"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

type stubOrdersService struct {
	placeFn  func(ctx context.Context, input orders.PlaceOrderInput) (*orders.Receipt, error)
	received *orders.PlaceOrderInput
}

func (s *stubOrdersService) PlaceOrder(ctx context.Context, input orders.PlaceOrderInput) (*orders.Receipt, error) {
	s.received = &input
	if s.placeFn != nil {
		return s.placeFn(ctx, input)
	}
	return &orders.Receipt{
		OrderID:    uuid.New(),
		Status:     enums.OrderStatusPending,
		TotalPrice: input.Snapshot.TotalPrice,
		ItemCount:  input.Snapshot.ItemCount,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *stubOrdersService) ListUserOrders(ctx context.Context, userID uuid.UUID, params orders.Page) (*orders.List, error) {
	return &orders.List{}, nil
}

func (s *stubOrdersService) GetOrderDetail(ctx context.Context, userID, orderID uuid.UUID) (*orders.Detail, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func checkoutTestRouter(store *cart.Store, svc orders.Service, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithUserID(req.Context(), userID.String())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/v1/checkout", Checkout(store, svc, nil))
	return r
}

func seedCart(store *cart.Store, userID uuid.UUID) {
	store.Add(userID, cart.Line{
		ProductID:        uuid.New(),
		Name:             "Stylo bleu",
		Price:            decimal.NewFromInt(5),
		SelectedQuantity: 2,
	})
}

const checkoutBody = `{
	"address": {"full_name": "Amina Berrada", "street": "12 Rue des Ecoles", "city": "Casablanca", "postal_code": "20000"},
	"payment": {"method": "cash"}
}`

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	userID := uuid.New()
	store := cart.NewStore()
	seedCart(store, userID)
	svc := &stubOrdersService{}
	router := checkoutTestRouter(store, svc, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body %s", resp.Code, resp.Body.String())
	}
	if svc.received == nil {
		t.Fatal("expected service to receive the order input")
	}
	if svc.received.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, svc.received.UserID)
	}
	if svc.received.Snapshot.ItemCount != 2 {
		t.Fatalf("expected snapshot of the server-side cart, got count %d", svc.received.Snapshot.ItemCount)
	}
	if svc.received.Payment.Method != enums.PaymentMethodCash {
		t.Fatalf("unexpected payment method %s", svc.received.Payment.Method)
	}
	if snapshot := store.Snapshot(userID); len(snapshot.Lines) != 0 {
		t.Fatal("cart should be cleared after a committed order")
	}
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	userID := uuid.New()
	store := cart.NewStore()
	seedCart(store, userID)
	svc := &stubOrdersService{
		placeFn: func(ctx context.Context, input orders.PlaceOrderInput) (*orders.Receipt, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address is incomplete")
		},
	}
	router := checkoutTestRouter(store, svc, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(checkoutBody))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope responses.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if snapshot := store.Snapshot(userID); len(snapshot.Lines) != 1 {
		t.Fatal("cart must survive a failed checkout")
	}
}

func TestCheckoutRejectsUnknownFields(t *testing.T) {
	userID := uuid.New()
	store := cart.NewStore()
	seedCart(store, userID)
	router := checkoutTestRouter(store, &stubOrdersService{}, userID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"surprise": true}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
