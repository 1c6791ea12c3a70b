package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/biteaffair/storefront-backend/api/middleware"
	"github.com/biteaffair/storefront-backend/api/responses"
	"github.com/biteaffair/storefront-backend/api/validators"
	cartsvc "github.com/biteaffair/storefront-backend/internal/cart"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/types"
)

type cartResponse struct {
	Items      []types.LineItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
}

func newCartResponse(state *cartsvc.State) cartResponse {
	return cartResponse{
		Items:      state.Items,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice(),
	}
}

// CartGet returns the session's cart.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Get(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(state))
	}
}

type addCartItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	MenuType    string   `json:"menuType" validate:"required"`
	PortionSize string   `json:"portionSize"`
	Servings    int      `json:"servings"`
	Quantity    int      `json:"quantity"`
	Starters    []string `json:"starters"`
	MainCourse  []string `json:"mainCourse"`
	Breads      []string `json:"breads"`
	Desserts    []string `json:"desserts"`
	PackageType *string  `json:"packageType"`
}

func (req addCartItemRequest) toInput() (cartsvc.BuildInput, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return cartsvc.BuildInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price")
	}
	menuType, err := enums.ParseMenuType(req.MenuType)
	if err != nil {
		return cartsvc.BuildInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid menu type")
	}
	input := cartsvc.BuildInput{
		Name:        req.Name,
		Price:       price,
		MenuType:    menuType,
		PortionSize: enums.PortionSize(req.PortionSize),
		Servings:    req.Servings,
		Quantity:    req.Quantity,
		Starters:    req.Starters,
		MainCourse:  req.MainCourse,
		Breads:      req.Breads,
		Desserts:    req.Desserts,
	}
	if req.PackageType != nil {
		packageType, err := enums.ParsePackageType(*req.PackageType)
		if err != nil {
			return cartsvc.BuildInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package type")
		}
		input.PackageType = &packageType
	}
	return input, nil
}

// CartAddItem builds a customized line item and merges it into the cart.
// POST /api/v1/cart/items
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, item, err := svc.AddItem(r.Context(), middleware.SessionIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"item": item,
			"cart": newCartResponse(state),
		})
	}
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartUpdateQuantity sets a line's quantity; zero or less removes the line.
// PATCH /api/v1/cart/items/{itemID}
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.UpdateQuantity(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "itemID"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(state))
	}
}

// CartRemoveItem drops one line from the cart.
// DELETE /api/v1/cart/items/{itemID}
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.RemoveItem(r.Context(), middleware.SessionIDFromContext(r.Context()), chi.URLParam(r, "itemID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(state))
	}
}

// CartClear empties the session's cart.
// DELETE /api/v1/cart
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.Clear(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(state))
	}
}
