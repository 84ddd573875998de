package views

import (
	"context"
	"time"

	apphttp "idscope_backend/internal/http"
	"idscope_backend/internal/mapview"
	"idscope_backend/platform/config"
	"idscope_backend/platform/logger"
)

// ModuleConfig combines the settings the module reads.
type ModuleConfig interface {
	config.ViewTokenConfig
	config.MapConfig
}

// Module owns the view registry and view tokens.
type Module struct {
	registry *Registry
	tokens   *Tokens
	handler  *Handler
	idleTTL  time.Duration
	log      *logger.Logger
}

func NewModule(cfg ModuleConfig, log *logger.Logger) *Module {
	registry := NewRegistry(mapview.SettingsFrom(cfg))
	tokens := NewTokens(cfg)
	return &Module{
		registry: registry,
		tokens:   tokens,
		handler:  NewHandler(registry, tokens, log),
		idleTTL:  cfg.GetViewIdleTTL(),
		log:      log,
	}
}

// Registry returns the live view registry.
func (m *Module) Registry() *Registry {
	return m.registry
}

// Tokens returns the view token issuer, which also verifies tokens for the
// router.
func (m *Module) Tokens() *Tokens {
	return m.tokens
}

// RunPruner drops idle views every interval until ctx is done.
func (m *Module) RunPruner(ctx context.Context, interval time.Duration) {
	if m.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.registry.Prune(m.idleTTL); n > 0 {
				m.log.Info("pruned idle views", "removed", n, "remaining", m.registry.Len())
			}
		}
	}
}

func (m *Module) Name() string {
	return "views"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/views", ctx.LookupRateLimiter.RateLimit(), m.handler.Create)
	ctx.Views.GET("/map", m.handler.Map)
	ctx.Views.DELETE("", m.handler.Delete)
}

var _ apphttp.Module = (*Module)(nil)
