package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bookingsvc "github.com/biteaffair/storefront-backend/internal/booking"
	cartsvc "github.com/biteaffair/storefront-backend/internal/cart"
	ordersvc "github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/internal/session"
	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

type stubOrders struct {
	submitInput  *ordersvc.SubmitInput
	submitResult *ordersvc.SubmitResult
	submitErr    error
	order        *models.Order
	statusErr    error
}

func (s *stubOrders) Submit(_ context.Context, input ordersvc.SubmitInput) (*ordersvc.SubmitResult, error) {
	s.submitInput = &input
	return s.submitResult, s.submitErr
}

func (s *stubOrders) CheckStatus(context.Context, string) (*models.Order, error) {
	return s.order, s.statusErr
}

func (s *stubOrders) ListAll(context.Context) ([]models.Order, error) {
	if s.order == nil {
		return nil, nil
	}
	return []models.Order{*s.order}, nil
}

func (s *stubOrders) ListBySession(context.Context, string) ([]models.Order, error) {
	return s.ListAll(context.Background())
}

func (s *stubOrders) Decide(_ context.Context, orderID string, status enums.OrderStatus, notes string) (*models.Order, error) {
	if s.order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	s.order.Status = status
	s.order.Notes = notes
	return s.order, nil
}

func newOrderTestDeps(t *testing.T) (cartsvc.Service, bookingsvc.Service) {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	cart, err := cartsvc.NewService(session.NewMemoryStore(), logg)
	require.NoError(t, err)
	booking, err := bookingsvc.NewService(session.NewMemoryStore(), logg)
	require.NoError(t, err)
	return cart, booking
}

func seedCart(t *testing.T, cart cartsvc.Service, sessionID string) {
	t.Helper()
	_, _, err := cart.AddItem(context.Background(), sessionID, cartsvc.BuildInput{
		Name:     "Paneer Tikka",
		Price:    decimal.NewFromInt(280),
		MenuType: enums.MenuTypeJain,
		Quantity: 2,
	})
	require.NoError(t, err)
}

func TestOrderSubmitUsesCartSnapshotAndClearsCart(t *testing.T) {
	cart, booking := newOrderTestDeps(t)
	seedCart(t, cart, "s1")

	stub := &stubOrders{submitResult: &ordersvc.SubmitResult{Success: true, OrderID: "ORD-1", Status: "pending", Message: "ok"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	handler := OrderSubmit(stub, cart, booking, logg)

	body := `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210"}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body)), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.NotNil(t, stub.submitInput)
	require.Len(t, stub.submitInput.Items, 1)
	require.Equal(t, "s1", stub.submitInput.SessionID)

	state, err := cart.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Empty(t, state.Items)
}

func TestOrderSubmitFillsEventDetailsFromWizard(t *testing.T) {
	cart, booking := newOrderTestDeps(t)
	seedCart(t, cart, "s1")

	city := "gurugram"
	date := "2026-09-15"
	_, err := booking.Select(context.Background(), "s1", bookingsvc.Patch{City: &city, EventDate: &date})
	require.NoError(t, err)

	stub := &stubOrders{submitResult: &ordersvc.SubmitResult{Success: true, OrderID: "ORD-1", Status: "pending"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	handler := OrderSubmit(stub, cart, booking, logg)

	body := `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210"}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body)), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, "2026-09-15", stub.submitInput.EventDate)
	require.Equal(t, "gurugram", stub.submitInput.EventLocation)
	require.Equal(t, 25, stub.submitInput.GuestCount)
}

func TestOrderSubmitValidationFailureKeepsCart(t *testing.T) {
	cart, booking := newOrderTestDeps(t)
	seedCart(t, cart, "s1")

	stub := &stubOrders{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	handler := OrderSubmit(stub, cart, booking, logg)

	body := `{"name":"Asha Verma","email":"asha@example.com","phone":"12345"}`
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body)), "s1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	state, err := cart.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
}

func TestOrderStatusNotFound(t *testing.T) {
	stub := &stubOrders{statusErr: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
	router := chi.NewRouter()
	router.Get("/api/v1/orders/{orderID}/status", OrderStatus(stub, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-missing/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestOrderStatusReturnsDecision(t *testing.T) {
	stub := &stubOrders{order: &models.Order{ID: "ORD-1", Status: enums.OrderStatusApproved, Notes: "see you soon"}}
	router := chi.NewRouter()
	router.Get("/api/v1/orders/{orderID}/status", OrderStatus(stub, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-1/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	status := decodeData[orderStatusResponse](t, resp)
	require.Equal(t, "approved", status.Status)
	require.Equal(t, "see you soon", status.Notes)
}

func TestAdminOrderDecide(t *testing.T) {
	stub := &stubOrders{order: &models.Order{ID: "ORD-1", Status: enums.OrderStatusPending}}
	router := chi.NewRouter()
	router.Patch("/api/admin/v1/orders/{orderID}/status", AdminOrderDecide(stub, nil))

	body := `{"status":"approved","adminNotes":"confirmed"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/ORD-1/status", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, enums.OrderStatusApproved, stub.order.Status)
}

func TestAdminOrderDecideRejectsUnknownStatus(t *testing.T) {
	stub := &stubOrders{order: &models.Order{ID: "ORD-1", Status: enums.OrderStatusPending}}
	router := chi.NewRouter()
	router.Patch("/api/admin/v1/orders/{orderID}/status", AdminOrderDecide(stub, nil))

	body := `{"status":"shipped"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/ORD-1/status", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}
