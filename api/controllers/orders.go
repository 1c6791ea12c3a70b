package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biteaffair/storefront-backend/api/middleware"
	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	bookingsvc "github.com/biteaffair/storefront-backend/internal/booking"
	cartsvc "github.com/biteaffair/storefront-backend/internal/cart"
	ordersvc "github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

type submitOrderRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,len=10,numeric"`
	EventDate     string `json:"eventDate"`
	EventLocation string `json:"eventLocation"`
	GuestCount    int    `json:"guestCount" validate:"min=0"`
}

// OrderSubmit places the session's cart as an order. The cart is cleared only
// after the submission sticks; event details fall back to the booking wizard
// when the form leaves them blank.
func OrderSubmit(orders ordersvc.Service, cart cartsvc.Service, booking bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload submitOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		state, err := cart.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := ordersvc.SubmitInput{
			SessionID: sessionID,
			Customer: types.CustomerDetails{
				Name:  payload.Name,
				Email: payload.Email,
				Phone: payload.Phone,
			},
			Items:         state.Items,
			EventDate:     payload.EventDate,
			EventLocation: payload.EventLocation,
			GuestCount:    payload.GuestCount,
		}

		if wizard, werr := booking.Get(r.Context(), sessionID); werr == nil {
			if input.EventDate == "" {
				input.EventDate = wizard.Data.EventDate
			}
			if input.EventLocation == "" {
				input.EventLocation = wizard.Data.City
			}
			if input.EventLocation == "" {
				input.EventLocation = wizard.Data.Location
			}
			if input.GuestCount == 0 {
				input.GuestCount = wizard.Data.GuestCount
			}
		}

		result, err := orders.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.Success {
			if _, cerr := cart.Clear(r.Context(), sessionID); cerr != nil {
				logg.Error(r.Context(), "cart clear after submission failed", cerr)
			}
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

type orderStatusResponse struct {
	OrderID         string `json:"orderId"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	StatusChangedAt any    `json:"statusChangedAt,omitempty"`
}

func newOrderStatusResponse(order *models.Order) orderStatusResponse {
	resp := orderStatusResponse{
		OrderID: order.ID,
		Status:  string(order.Status),
		Notes:   order.Notes,
	}
	if order.StatusChangedAt != nil {
		resp.StatusChangedAt = order.StatusChangedAt
	}
	return resp
}

// OrderStatus serves the polling endpoint the storefront checks while an
// order awaits its decision.
// GET /api/v1/orders/{orderID}/status
func OrderStatus(orders ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := orders.CheckStatus(r.Context(), chi.URLParam(r, "orderID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newOrderStatusResponse(order))
	}
}

// OrdersListMine returns the session's own orders, newest first.
// GET /api/v1/orders
func OrdersListMine(orders ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := orders.ListBySession(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"orders": list, "count": len(list)})
	}
}
