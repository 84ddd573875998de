// Package lookup wires the classify -> enrich -> leader pipeline to the
// hosting views.
package lookup

import (
	"idscope_backend/internal/events"
	apphttp "idscope_backend/internal/http"
	"idscope_backend/internal/lookup/service"
	"idscope_backend/internal/views"
	"idscope_backend/platform/logger"
	"idscope_backend/platform/validator"
)

// Module handles lookups and the standalone classifier endpoint.
type Module struct {
	service *service.Service
	handler *Handler
}

func NewModule(profiles service.ProfileSource, leaderSource service.LeaderSource, registry *views.Registry, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(profiles, leaderSource, bus, log)
	return &Module{
		service: svc,
		handler: NewHandler(svc, registry, val),
	}
}

// Service returns the pipeline service.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) Name() string {
	return "lookup"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Views.POST("/lookups", ctx.LookupRateLimiter.RateLimit(), m.handler.Lookup)
	ctx.V1.GET("/classify", m.handler.Classify)
}

var _ apphttp.Module = (*Module)(nil)
