// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Bazaar classifieds HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations (idempotent).
//  5. Build the cross-cutting infrastructure: token verifier, locale
//     negotiator, metrics, event publisher, rate limiter.
//  6. Wire repositories, services and handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/bazaar/internal/api"
	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/core/category"
	"github.com/taibuivan/bazaar/internal/core/favorite"
	"github.com/taibuivan/bazaar/internal/core/reference"
	"github.com/taibuivan/bazaar/internal/core/search"
	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/config"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/events"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/metrics"
	"github.com/taibuivan/bazaar/internal/platform/middleware"
	"github.com/taibuivan/bazaar/internal/platform/migration"
	pgstore "github.com/taibuivan/bazaar/internal/platform/postgres"
	redisstore "github.com/taibuivan/bazaar/internal/platform/redis"
	"github.com/taibuivan/bazaar/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("events_enabled", cfg.NatsURL != ""),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Infrastructure ─────────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "load jwt public key")

	negotiator, err := locale.NewNegotiator(cfg.DefaultLocale, cfg.SupportedLocales)
	must(log, err, "configure locales")
	catalog := negotiator.Catalog()

	appMetrics := metrics.New("bazaar")
	store := cache.NewRedisStore(rdb)

	var publisher events.Publisher = events.Noop{}
	if cfg.NatsURL != "" {
		nats, err := events.Connect(cfg.NatsURL, log)
		must(log, err, "connect to nats")
		defer nats.Close()
		publisher = nats
	}

	backgroundCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Cleanup(backgroundCtx, constants.RateLimitCleanupInterval)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	categoryService := category.NewService(category.NewRepository(pool), store, cfg.CacheTTL, catalog, log)

	favoriteRepository := favorite.NewRepository(pool)
	adService := ad.NewService(ad.NewRepository(pool), favoriteRepository, category.NewCountRefresher(categoryService, publisher), appMetrics, catalog, log)
	favoriteService := favorite.NewService(favoriteRepository, adService, publisher, appMetrics, log)

	searchService := search.NewService(search.NewRepository(pool), adService, categoryService, store, cfg.PopularCacheTTL, appMetrics, log)
	referenceService := reference.NewService(reference.NewPostgresRepository(pool), store, cfg.CacheTTL, catalog)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		"postgres": func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		"redis":    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, []string{"postgres", "redis"}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, api.Infrastructure{
		Verifier:   verifier,
		Negotiator: negotiator,
		Limiter:    limiter,
		Metrics:    appMetrics,
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Category:  category.NewHandler(categoryService),
		Ad:        ad.NewHandler(adService),
		Favorite:  favorite.NewHandler(favoriteService),
		Search:    search.NewHandler(searchService),
		Reference: reference.NewHandler(referenceService),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))
	stopBackground()

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		return
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger and makes it the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only for startup wiring. After startup every error is returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
