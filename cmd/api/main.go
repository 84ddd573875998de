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

	"idscope_backend/internal/countryinfo"
	"idscope_backend/internal/events"
	apphttp "idscope_backend/internal/http"
	"idscope_backend/internal/http/router"
	"idscope_backend/internal/leaders"
	"idscope_backend/internal/lookup"
	"idscope_backend/internal/views"
	"idscope_backend/platform/config"
	"idscope_backend/platform/logger"
	"idscope_backend/platform/metrics"
	"idscope_backend/platform/validator"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	shutdownTimeout   = 10 * time.Second
	viewPruneInterval = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	lookup.SubscribeMetrics(eventBus, appMetrics)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	countryModule, err := countryinfo.NewModule(cfg, log)
	if err != nil {
		log.Error("failed to initialize country info module", "error", err)
		panic("failed to initialize country info module: " + err.Error())
	}
	defer func() {
		if err := countryModule.Close(); err != nil {
			log.Warn("failed to close country profile cache", "error", err)
		}
	}()

	health := countryModule.Health()
	if health != nil {
		// Cache errors degrade to misses, so an unreachable Redis is not fatal.
		if err := withRetry(ctx, log, "redis ping", 3, time.Second, func() error {
			return health.Ping(ctx)
		}); err != nil {
			log.Warn("redis unreachable at startup; country profiles will not be cached", "error", err)
		}
	}

	leaderModule, err := leaders.NewModule(cfg, val, log)
	if err != nil {
		log.Error("failed to load leader table", "error", err)
		panic("failed to load leader table: " + err.Error())
	}

	viewsModule := views.NewModule(cfg, log)
	go viewsModule.RunPruner(ctx, viewPruneInterval)

	lookupModule := lookup.NewModule(
		countryModule.Service(),
		leaderModule.Table(),
		viewsModule.Registry(),
		eventBus,
		val,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:     cfg,
		Logger:     log,
		Health:     health,
		ViewTokens: viewsModule.Tokens(),
		Gatherer:   prometheus.DefaultGatherer,
		Modules: []apphttp.Module{
			viewsModule,
			lookupModule,
			countryModule,
			leaderModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// withRetry runs fn until it succeeds or attempts run out, backing off
// quadratically. Only startup probes use it.
func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
