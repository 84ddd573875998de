// Package countryinfo provides the composition root for country metadata
// enrichment.
package countryinfo

import (
	"idscope_backend/internal/countryinfo/client"
	"idscope_backend/internal/countryinfo/service"
	apphttp "idscope_backend/internal/http"
	"idscope_backend/platform/config"
	"idscope_backend/platform/logger"
)

// ModuleConfig combines the settings the module reads.
type ModuleConfig interface {
	config.CountryDataConfig
	config.CacheConfig
}

// Module wires the country-data client, cache and service.
type Module struct {
	service *service.Service
	handler *Handler
	redis   *service.RedisCache
}

// NewModule creates a new country info module. When REDIS_URL is set the
// cache is shared through Redis; otherwise it is process-local.
func NewModule(cfg ModuleConfig, log *logger.Logger) (*Module, error) {
	cli := client.New(cfg, log)

	var (
		cache service.Cache
		rc    *service.RedisCache
	)
	if cfg.IsRedisEnabled() {
		var err error
		rc, err = service.NewRedisCache(cfg.GetRedisURL(), log)
		if err != nil {
			return nil, err
		}
		cache = rc
		log.Info("country profile cache backed by redis")
	} else {
		cache = service.NewMemoryCache()
		log.Info("country profile cache is process-local: REDIS_URL not configured")
	}

	svc := service.New(cli, cache, cfg.GetCountryCacheTTL(), log)
	return &Module{
		service: svc,
		handler: NewHandler(svc),
		redis:   rc,
	}, nil
}

// Service returns the country profile service.
func (m *Module) Service() *service.Service {
	return m.service
}

// Health returns the Redis cache for readiness checks, or nil when the cache
// is process-local.
func (m *Module) Health() apphttp.HealthChecker {
	if m.redis == nil {
		return nil
	}
	return m.redis
}

// Close releases the Redis connection pool if one was opened.
func (m *Module) Close() error {
	if m.redis == nil {
		return nil
	}
	return m.redis.Close()
}

func (m *Module) Name() string {
	return "countryinfo"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/countries", ctx.LookupRateLimiter.RateLimit())
	group.GET("/:name", m.handler.GetProfile)
}

var _ apphttp.Module = (*Module)(nil)
