package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tahaxtrex/Scolay/api/middleware"
	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/api/validators"
	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/internal/catalog"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
	"github.com/tahaxtrex/Scolay/pkg/logger"
)

type addCartItemRequest struct {
	ProductID        uuid.UUID  `json:"product_id" validate:"required"`
	SupplyListItemID *uuid.UUID `json:"supply_list_item_id,omitempty"`
	// Quantity arrives as the raw input string; anything unparseable
	// falls back to a quantity of one.
	Quantity string `json:"quantity,omitempty"`
}

type updateCartItemRequest struct {
	Quantity string `json:"quantity" validate:"required"`
}

func authedUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return userID, nil
}

func GetCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store.Snapshot(userID))
	}
}

// AddCartItem resolves the product server-side so the stored line always
// carries the catalog price, not whatever the client claims.
func AddCartItem(store *cart.Store, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot := store.Add(userID, cart.Line{
			SupplyListItemID: req.SupplyListItemID,
			ProductID:        product.ID,
			Name:             product.Name,
			Price:            product.Price,
			ImageURL:         product.ImageURL,
			Category:         product.Category,
			SelectedQuantity: cart.ParseQuantity(req.Quantity),
		})
		responses.WriteSuccess(w, snapshot)
	}
}

func UpdateCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be numeric"))
			return
		}

		responses.WriteSuccess(w, store.UpdateQuantity(userID, productID, quantity))
	}
}

func RemoveCartItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := validators.ParsePathUUID(chi.URLParam(r, "productId"), "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, store.Remove(userID, productID))
	}
}

func ClearCart(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear(userID)
		responses.WriteSuccess(w, store.Snapshot(userID))
	}
}
