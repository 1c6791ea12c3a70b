package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/biteaffair/storefront-backend/api/routes"
	"github.com/biteaffair/storefront-backend/internal/booking"
	"github.com/biteaffair/storefront-backend/internal/cart"
	"github.com/biteaffair/storefront-backend/internal/locations"
	"github.com/biteaffair/storefront-backend/internal/menu"
	"github.com/biteaffair/storefront-backend/internal/notify"
	"github.com/biteaffair/storefront-backend/internal/orders"
	"github.com/biteaffair/storefront-backend/internal/session"
	"github.com/biteaffair/storefront-backend/pkg/config"
	"github.com/biteaffair/storefront-backend/pkg/db"
	"github.com/biteaffair/storefront-backend/pkg/logger"
	"github.com/biteaffair/storefront-backend/pkg/metrics"
	"github.com/biteaffair/storefront-backend/pkg/migrate"
	"github.com/biteaffair/storefront-backend/pkg/pubsub"
	"github.com/biteaffair/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionStore, err := session.NewRedisStore(redisClient, cfg.Session.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create session store", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()

	notifier, cleanup, err := buildNotifier(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifier", err)
		os.Exit(1)
	}
	defer cleanup()

	dispatcher, err := notify.NewDispatcher(notifier, metrics.NewNotifyMetrics(registry), logg, cfg.Notify.AdminEmail)
	if err != nil {
		logg.Error(context.Background(), "failed to create notification dispatcher", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menu.EmbeddedSource())
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(sessionStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	bookingService, err := booking.NewService(sessionStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create booking service", err)
		os.Exit(1)
	}

	locationsService, err := locations.NewService(sessionStore, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create locations service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repository: orders.NewRepository(dbClient.DB()),
		Tx:         dbClient,
		Dispatcher: dispatcher,
		Logger:     logg,
		IDPrefix:   cfg.Orders.IDPrefix,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			DBPinger:  dbClient,
			RedisPing: redisClient,
			Registry:  registry,
			Menu:      menuService,
			Locations: locationsService,
			Cart:      cartService,
			Booking:   bookingService,
			Orders:    ordersService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildNotifier picks the notification transport from config. Dev defaults to
// the log notifier so the service runs without GCP credentials.
func buildNotifier(ctx context.Context, cfg *config.Config, logg *logger.Logger) (notify.Notifier, func(), error) {
	if cfg.Notify.Mode != config.NotifyModePubSub {
		notifier, err := notify.NewLogNotifier(logg)
		if err != nil {
			return nil, nil, err
		}
		return notifier, func() {}, nil
	}

	pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
	if err != nil {
		return nil, nil, err
	}
	notifier, err := notify.NewPubSubNotifier(pubsubClient, logg)
	if err != nil {
		_ = pubsubClient.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing pubsub client", err)
		}
	}
	return notifier, cleanup, nil
}
