package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clubpos/internal/db"
	"clubpos/internal/domain/cast"
	"clubpos/internal/domain/customer"
	"clubpos/internal/domain/menu"
	"clubpos/internal/domain/order"
	"clubpos/internal/domain/report"
	"clubpos/internal/domain/settings"
	"clubpos/internal/domain/shift"
	"clubpos/internal/domain/table"
	"clubpos/internal/platform/config"
	casthandler "clubpos/internal/transport/http/handlers/casts"
	customerhandler "clubpos/internal/transport/http/handlers/customers"
	menuhandler "clubpos/internal/transport/http/handlers/menu"
	orderhandler "clubpos/internal/transport/http/handlers/orders"
	reporthandler "clubpos/internal/transport/http/handlers/reports"
	settingshandler "clubpos/internal/transport/http/handlers/settings"
	shifthandler "clubpos/internal/transport/http/handlers/shifts"
	tablehandler "clubpos/internal/transport/http/handlers/tables"
	"clubpos/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds and assembles the router. Callers own
// the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	settingsStore := settings.NewStore(pool)
	tableStore := table.NewStore(pool)
	menuStore := menu.NewStore(pool)
	castStore := cast.NewStore(pool)
	shiftStore := shift.NewStore(pool)
	customerStore := customer.NewStore(pool)
	orderStore := order.NewStore(pool)
	reportStore := report.NewStore(pool)

	orderService := order.NewService(orderStore, tableStore, menuStore, settingsStore, customerStore)
	reportService := report.NewService(reportStore, orderStore, shiftStore, castStore, settingsStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		settingshandler.NewHandler(settingsStore).RegisterRoutes(r)
		tablehandler.NewHandler(tableStore).RegisterRoutes(r)
		menuhandler.NewHandler(menuStore).RegisterRoutes(r)
		casthandler.NewHandler(castStore).RegisterRoutes(r)
		shifthandler.NewHandler(shiftStore).RegisterRoutes(r)
		orderhandler.NewHandler(orderService, orderStore).RegisterRoutes(r)
		customerhandler.NewHandler(customerStore).RegisterRoutes(r)
		reporthandler.NewHandler(reportService).RegisterRoutes(r)
	})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	app, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("club POS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
