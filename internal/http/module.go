// Package http provides HTTP server infrastructure including the Module interface
// that all domain modules must implement for route registration.
package http

import (
	"idscope_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// V1 is the public /api/v1 route group.
	V1 *gin.RouterGroup
	// Views is the /api/v1/views/:viewID group guarded by a view token.
	Views *gin.RouterGroup
	// ViewTokenMiddleware validates view tokens for routes outside Views.
	ViewTokenMiddleware gin.HandlerFunc
	// LookupRateLimiter throttles routes that reach the country-data service.
	LookupRateLimiter *httpkit.IPRateLimiter
}
