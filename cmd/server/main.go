package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HammerMeetNail/eventplanner/internal/config"
	"github.com/HammerMeetNail/eventplanner/internal/database"
	"github.com/HammerMeetNail/eventplanner/internal/events"
	"github.com/HammerMeetNail/eventplanner/internal/handlers"
	"github.com/HammerMeetNail/eventplanner/internal/logging"
	"github.com/HammerMeetNail/eventplanner/internal/middleware"
	"github.com/HammerMeetNail/eventplanner/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := logging.ParseLevel(cfg.Server.LogLevel)
	logging.SetDefaultLevel(level)
	logger := logging.New().SetLevel(level)

	logger.Info("Starting event planning server...", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	logger.Info("Running database migrations...", map[string]interface{}{
		"path": cfg.Database.MigrationsPath,
	})
	if err := database.MigrateUp(cfg.Database.DSN(), cfg.Database.MigrationsPath); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("Migrations completed")

	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()
	logger.Info("Connected to Redis")

	publisher := newPublisher(cfg.Events, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Closing event publisher", map[string]interface{}{"error": err.Error()})
		}
	}()

	dbAdapter := services.NewPoolAdapter(db.Pool)
	categoryService := services.NewCategoryService(dbAdapter)
	vendorService := services.NewVendorService(dbAdapter)
	recommendationService := services.NewRecommendationService(categoryService, vendorService, cfg.Recommendation)
	recommendationService.SetPublisher(publisher)

	handler := buildHandler(cfg, logger, routes{
		health: handlers.NewHealthHandler(
			handlers.Dependency{Name: "postgres", Checker: db},
			handlers.Dependency{Name: "redis", Checker: redisDB},
		),
		categories:      handlers.NewCategoryHandler(categoryService),
		recommendations: handlers.NewRecommendationHandler(recommendationService),
	}, redisDB)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}

type routes struct {
	health          *handlers.HealthHandler
	categories      *handlers.CategoryHandler
	recommendations *handlers.RecommendationHandler
}

// buildHandler registers the routes and wraps them in the middleware chain.
// counter may be nil, which leaves the rate limiter disabled.
func buildHandler(cfg *config.Config, logger *logging.Logger, r routes, counter middleware.WindowCounter) http.Handler {
	rateLimiter := middleware.NewRateLimiter(counter, cfg.RateLimit.Requests, cfg.RateLimit.Window, "ratelimit:api:", nil, false)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/categories", r.categories.List)
	api.HandleFunc("GET /api/event-planning/recommendations", r.recommendations.Get)

	mux := http.NewServeMux()

	// Health endpoints (no rate limit)
	mux.HandleFunc("GET /health", r.health.Health)
	mux.HandleFunc("GET /ready", r.health.Ready)
	mux.HandleFunc("GET /live", r.health.Live)

	mux.Handle("/api/", rateLimiter.Middleware(api))

	// Build middleware chain (order matters: outermost last)
	var handler http.Handler = mux
	handler = middleware.NewCacheControl().Apply(handler)
	handler = middleware.NewCompress().Apply(handler)
	handler = middleware.NewSecurityHeaders(cfg.Server.Secure).Apply(handler)
	handler = middleware.NewRequestLogger().Apply(handler)
	handler = middleware.NewRequestID(logger).Apply(handler)
	return handler
}

func newPublisher(cfg config.EventsConfig, logger *logging.Logger) events.Publisher {
	switch cfg.Provider {
	case "kafka":
		logger.Info("Publishing recommendation events to Kafka", map[string]interface{}{
			"brokers": cfg.Brokers,
			"topic":   cfg.Topic,
		})
		return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
	case "log":
		return events.NewLogPublisher(logger)
	default:
		return events.NoopPublisher{}
	}
}
