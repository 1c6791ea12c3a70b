package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/biteaffair/storefront-backend/api/controllers"
	"github.com/biteaffair/storefront-backend/api/middleware"
	bookingsvc "github.com/biteaffair/storefront-backend/internal/booking"
	cartsvc "github.com/biteaffair/storefront-backend/internal/cart"
	locationsvc "github.com/biteaffair/storefront-backend/internal/locations"
	menusvc "github.com/biteaffair/storefront-backend/internal/menu"
	ordersvc "github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/pkg/config"
	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// Deps carries everything the router needs. Pingers may be nil when the
// backing store is not wired (memory session store in dev).
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DBPinger  controllers.Pinger
	RedisPing controllers.Pinger
	Registry  *prometheus.Registry

	Menu      menusvc.Service
	Locations locationsvc.Service
	Cart      cartsvc.Service
	Booking   bookingsvc.Service
	Orders    ordersvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"db":    deps.DBPinger,
			"redis": deps.RedisPing,
		}))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Route("/menus", func(r chi.Router) {
			r.Get("/search", controllers.MenuSearch(deps.Menu, logg))
			r.Get("/{menuType}", controllers.MenuGet(deps.Menu, logg))
			r.Get("/{menuType}/options", controllers.MenuOptions(deps.Menu, logg))
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", controllers.LocationsList(deps.Locations, logg))
			r.Get("/preference", controllers.LocationPreferenceGet(deps.Locations, logg))
			r.Put("/preference", controllers.LocationPreferenceSet(deps.Locations, logg))
			r.Delete("/preference", controllers.LocationPreferenceClear(deps.Locations, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
			r.Patch("/items/{itemID}", controllers.CartUpdateQuantity(deps.Cart, logg))
			r.Delete("/items/{itemID}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Route("/booking", func(r chi.Router) {
			r.Get("/", controllers.BookingGet(deps.Booking, logg))
			r.Delete("/", controllers.BookingReset(deps.Booking, logg))
			r.Post("/select", controllers.BookingSelect(deps.Booking, logg))
			r.Post("/back", controllers.BookingBack(deps.Booking, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersListMine(deps.Orders, logg))
			r.Post("/", controllers.OrderSubmit(deps.Orders, deps.Cart, deps.Booking, logg))
			r.Get("/{orderID}/status", controllers.OrderStatus(deps.Orders, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.Admin.Token, logg))
		r.Get("/orders", controllers.AdminOrdersList(deps.Orders, logg))
		r.Patch("/orders/{orderID}/status", controllers.AdminOrderDecide(deps.Orders, logg))
	})

	return r
}
