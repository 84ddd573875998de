package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "idscope_backend/internal/http"
	"idscope_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpConfig struct {
	allowAll bool
	origins  []string
}

func (c httpConfig) GetHTTPAddr() string      { return ":0" }
func (c httpConfig) GetCORSAllowAll() bool    { return c.allowAll }
func (c httpConfig) GetCORSOrigins() []string { return c.origins }
func (c httpConfig) GetCORSAllowCreds() bool  { return false }

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type rejectAll struct{}

func (rejectAll) Verify(string) (uuid.UUID, error) { return uuid.Nil, errors.New("no") }

type probeModule struct{}

func (probeModule) Name() string { return "probe" }

func (probeModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Views.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func newApp(health apphttp.HealthChecker) *apphttp.App {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "probe"}))
	return &apphttp.App{
		Config:     httpConfig{origins: []string{"http://localhost:4200"}},
		Logger:     logger.Nop(),
		Health:     health,
		ViewTokens: rejectAll{},
		Gatherer:   reg,
		Modules:    []apphttp.Module{probeModule{}},
	}
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(New(newApp(nil)), "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = get(New(newApp(pinger{err: errors.New("redis down")})), "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestMetricsEndpoint(t *testing.T) {
	w := get(New(newApp(nil)), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "probe_total")
}

func TestViewRoutesRequireToken(t *testing.T) {
	engine := New(newApp(nil))
	w := get(engine, "/api/v1/views/"+uuid.NewString()+"/probe")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORSConfig(t *testing.T) {
	cfg := corsConfig(&apphttp.App{Config: httpConfig{allowAll: true}})
	assert.True(t, cfg.AllowAllOrigins)

	cfg = corsConfig(&apphttp.App{Config: httpConfig{}})
	require.NotNil(t, cfg.AllowOriginFunc)
	assert.False(t, cfg.AllowOriginFunc("http://evil.example"))

	cfg = corsConfig(&apphttp.App{Config: httpConfig{origins: []string{"http://localhost:4200"}}})
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.AllowOrigins)
}
