package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/api/middleware"
	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/internal/catalog"
	"github.com/tahaxtrex/Scolay/pkg/db/models"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

type stubCatalogService struct {
	catalog.Service
	products map[uuid.UUID]*models.Product
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		return p, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func cartTestRouter(store *cart.Store, catalogSvc catalog.Service, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithUserID(req.Context(), userID.String())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/v1/cart", GetCart(store, nil))
	r.Post("/api/v1/cart/items", AddCartItem(store, catalogSvc, nil))
	r.Patch("/api/v1/cart/items/{productId}", UpdateCartItem(store, nil))
	r.Delete("/api/v1/cart/items/{productId}", RemoveCartItem(store, nil))
	r.Delete("/api/v1/cart", ClearCart(store, nil))
	return r
}

func decodeSnapshot(t *testing.T, body *strings.Reader) cart.Snapshot {
	t.Helper()
	var envelope struct {
		Data cart.Snapshot `json:"data"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	return envelope.Data
}

func TestCartFlow(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	store := cart.NewStore()
	catalogSvc := &stubCatalogService{products: map[uuid.UUID]*models.Product{
		productID: {
			ID:    productID,
			Name:  "Cahier 96 pages",
			Price: decimal.NewFromInt(12),
		},
	}}
	router := cartTestRouter(store, catalogSvc, userID)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"`+productID.String()+`","quantity":"3"}`))
	addResp := httptest.NewRecorder()
	router.ServeHTTP(addResp, add)
	if addResp.Code != http.StatusOK {
		t.Fatalf("add: expected 200 got %d body %s", addResp.Code, addResp.Body.String())
	}
	snapshot := decodeSnapshot(t, strings.NewReader(addResp.Body.String()))
	if snapshot.ItemCount != 3 {
		t.Fatalf("expected item count 3 got %d", snapshot.ItemCount)
	}
	if !snapshot.TotalPrice.Equal(decimal.NewFromInt(36)) {
		t.Fatalf("expected total 36 got %s", snapshot.TotalPrice)
	}

	// garbage quantity falls back to one and merges with the line
	addAgain := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"`+productID.String()+`","quantity":"abc"}`))
	addAgainResp := httptest.NewRecorder()
	router.ServeHTTP(addAgainResp, addAgain)
	snapshot = decodeSnapshot(t, strings.NewReader(addAgainResp.Body.String()))
	if len(snapshot.Lines) != 1 || snapshot.ItemCount != 4 {
		t.Fatalf("expected merged line with count 4, got %+v", snapshot)
	}

	update := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/"+productID.String(),
		strings.NewReader(`{"quantity":"2"}`))
	updateResp := httptest.NewRecorder()
	router.ServeHTTP(updateResp, update)
	snapshot = decodeSnapshot(t, strings.NewReader(updateResp.Body.String()))
	if snapshot.ItemCount != 2 {
		t.Fatalf("expected absolute quantity 2 got %d", snapshot.ItemCount)
	}

	zero := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/"+productID.String(),
		strings.NewReader(`{"quantity":"0"}`))
	zeroResp := httptest.NewRecorder()
	router.ServeHTTP(zeroResp, zero)
	snapshot = decodeSnapshot(t, strings.NewReader(zeroResp.Body.String()))
	if len(snapshot.Lines) != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %+v", snapshot.Lines)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	userID := uuid.New()
	store := cart.NewStore()
	router := cartTestRouter(store, &stubCatalogService{products: map[uuid.UUID]*models.Product{}}, userID)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"`+uuid.NewString()+`"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, add)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	var envelope responses.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decoding error envelope: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
	if snapshot := store.Snapshot(userID); len(snapshot.Lines) != 0 {
		t.Fatal("cart should stay empty for unknown products")
	}
}

func TestCartRequiresAuthenticatedUser(t *testing.T) {
	store := cart.NewStore()
	handler := GetCart(store, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
