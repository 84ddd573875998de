// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"idscope_backend/platform/config"
	"idscope_backend/platform/httpkit"
	"idscope_backend/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks (e.g., Redis ping). Optional.
	Health HealthChecker
	// ViewTokens verifies bearer tokens on view routes.
	ViewTokens httpkit.ViewTokenVerifier
	// Gatherer backs the /metrics endpoint.
	Gatherer prometheus.Gatherer
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
