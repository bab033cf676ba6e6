package controllers

import (
	"net/http"

	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/api/validators"
	"github.com/tahaxtrex/Scolay/internal/cart"
	"github.com/tahaxtrex/Scolay/internal/orders"
	"github.com/tahaxtrex/Scolay/pkg/logger"
)

type checkoutRequest struct {
	Address orders.Address          `json:"address"`
	Payment orders.PaymentSelection `json:"payment"`
}

// Checkout places an order from the caller's server-side cart. The cart
// is cleared only after the order commits.
func Checkout(store *cart.Store, svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := authedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req checkoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.PlaceOrder(r.Context(), orders.PlaceOrderInput{
			UserID:   userID,
			Snapshot: store.Snapshot(userID),
			Address:  req.Address,
			Payment:  req.Payment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Clear(userID)
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}
