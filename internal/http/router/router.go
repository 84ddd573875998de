// Package router builds the gin engine from the composed App.
package router

import (
	"net/http"
	"time"

	apphttp "idscope_backend/internal/http"
	"idscope_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// New mounts middleware, health, metrics and every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app)))

	engine.GET("/api/health", func(c *gin.Context) {
		if app.Health != nil {
			if err := app.Health.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if app.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := engine.Group("/api/v1")
	viewToken := httpkit.ViewTokenRequired(app.ViewTokens)

	ctx := &apphttp.RouterContext{
		Engine:              engine,
		V1:                  v1,
		Views:               v1.Group("/views/:viewID", viewToken),
		ViewTokenMiddleware: viewToken,
		// Two lookups per second per client with a small burst.
		LookupRateLimiter: httpkit.NewIPRateLimiter(rate.Limit(2), 10, app.Logger),
	}

	for _, module := range app.Modules {
		app.Logger.Debug("registering module routes", "module", module.Name())
		module.RegisterRoutes(ctx)
	}

	return engine
}

func corsConfig(app *apphttp.App) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: app.Config.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	switch origins := app.Config.GetCORSOrigins(); {
	case app.Config.GetCORSAllowAll():
		cfg.AllowAllOrigins = true
	case len(origins) == 0:
		cfg.AllowOriginFunc = func(string) bool { return false }
	default:
		cfg.AllowOrigins = origins
	}
	return cfg
}
