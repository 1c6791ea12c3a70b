package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	ordersvc "github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// AdminOrdersList returns every order for the review dashboard, newest first.
// GET /api/admin/v1/orders
func AdminOrdersList(orders ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"orders": list, "count": len(list)})
	}
}

type decideOrderRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"adminNotes"`
}

// AdminOrderDecide applies the approve/reject decision to a pending order.
// PATCH /api/admin/v1/orders/{orderID}/status
func AdminOrderDecide(orders ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload decideOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		order, err := orders.Decide(r.Context(), chi.URLParam(r, "orderID"), status, payload.AdminNotes)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
