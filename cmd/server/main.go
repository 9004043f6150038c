package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/joho/godotenv"

	"manpower/internal/config"
	"manpower/internal/db"
	"manpower/internal/domain/core"
	"manpower/internal/domain/payroll"
	"manpower/internal/platform/metrics"
	"manpower/internal/transport/http/api"
	corehandler "manpower/internal/transport/http/handlers/core"
	payrollhandler "manpower/internal/transport/http/handlers/payroll"
	reportshandler "manpower/internal/transport/http/handlers/reports"
	"manpower/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "manpower"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()

	var store core.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Error("database connect failed", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, "migrations"); err != nil {
				logger.Error("migrations failed", slog.Any("error", err))
				os.Exit(1)
			}
		}
		store = core.NewPgStore(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
		store = core.NewMemStore()
	}

	policy := cfg.RatePolicy()
	coreService := core.NewService(store)
	payrollService := payroll.NewService(store, policy)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		MaxAge:           300,
	}))
	router.Use(chimiddleware.CleanPath)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Metrics(collector))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api", func(r chi.Router) {
		corehandler.NewHandler(coreService).RegisterRoutes(r)
		reportshandler.NewHandler(coreService, policy, cfg.TrendWeeks).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, collector).RegisterRoutes(r)
	})

	logger.Info("server listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
