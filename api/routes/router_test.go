package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/biteaffair/storefront-backend/api/middleware"
	bookingsvc "github.com/biteaffair/storefront-backend/internal/booking"
	cartsvc "github.com/biteaffair/storefront-backend/internal/cart"
	locationsvc "github.com/biteaffair/storefront-backend/internal/locations"
	menusvc "github.com/biteaffair/storefront-backend/internal/menu"
	ordersvc "github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/internal/session"
	"github.com/biteaffair/storefront-backend/pkg/config"
	"github.com/biteaffair/storefront-backend/pkg/db/models"
	"github.com/biteaffair/storefront-backend/pkg/enums"
	pkgerrors "github.com/biteaffair/storefront-backend/pkg/errors"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubOrdersService struct{}

func (stubOrdersService) Submit(context.Context, ordersvc.SubmitInput) (*ordersvc.SubmitResult, error) {
	return &ordersvc.SubmitResult{Success: true, OrderID: "ORD-1", Status: "pending"}, nil
}

func (stubOrdersService) CheckStatus(context.Context, string) (*models.Order, error) {
	return &models.Order{ID: "ORD-1", Status: enums.OrderStatusPending}, nil
}

func (stubOrdersService) ListAll(context.Context) ([]models.Order, error) { return nil, nil }

func (stubOrdersService) ListBySession(context.Context, string) ([]models.Order, error) {
	return nil, nil
}

func (stubOrdersService) Decide(context.Context, string, enums.OrderStatus, string) (*models.Order, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := session.NewMemoryStore()

	cart, err := cartsvc.NewService(store, logg)
	require.NoError(t, err)
	booking, err := bookingsvc.NewService(store, logg)
	require.NoError(t, err)
	locations, err := locationsvc.NewService(store, logg)
	require.NoError(t, err)
	menu, err := menusvc.NewService(menusvc.EmbeddedSource())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "dev"
	cfg.Admin.Token = "test-admin-token"

	return NewRouter(Deps{
		Config:    cfg,
		Logger:    logg,
		DBPinger:  stubPinger{},
		RedisPing: stubPinger{},
		Registry:  prometheus.NewRegistry(),
		Menu:      menu,
		Locations: locations,
		Cart:      cart,
		Booking:   booking,
		Orders:    stubOrdersService{},
	})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestRouterAssignsSessionHeader(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotEmpty(t, resp.Header().Get(middleware.SessionHeader))
}

func TestRouterServesMenus(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menus/jain", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menus/sushi", nil))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menus/search?q=paneer&diet=veg", nil))
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestRouterAdminGuard(t *testing.T) {
	router := newTestRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil)
	req.Header.Set(middleware.AdminTokenHeader, "test-admin-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestRouterSubmitOrderFlow(t *testing.T) {
	router := newTestRouter(t)

	addBody := `{"name":"Paneer Tikka","price":"280","menuType":"jain","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(addBody))
	req.Header.Set(middleware.SessionHeader, "flow-session")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code)

	submitBody := `{"name":"Asha Verma","email":"asha@example.com","phone":"9876543210"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(submitBody))
	req.Header.Set(middleware.SessionHeader, "flow-session")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code)
}
