package http

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/admin"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/dashboard"
	"github.com/orris-inc/statsboard/internal/interfaces/http/middleware"
	"github.com/orris-inc/statsboard/internal/interfaces/http/routes"
	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// RouterDeps carries the handlers and middlewares the router mounts.
type RouterDeps struct {
	StatisticsHandler *admin.StatisticsHandler
	PageHandler       *dashboard.PageHandler
	AuthMiddleware    *middleware.AuthMiddleware
	RateLimiter       *middleware.RateLimiter
}

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
	deps   RouterDeps
	logger logger.Interface
}

// NewRouter creates a router on a fresh gin engine.
func NewRouter(deps RouterDeps, log logger.Interface) *Router {
	return &Router{
		engine: gin.New(),
		deps:   deps,
		logger: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/healthz", handlers.HealthCheck)

	routes.SetupStatisticsRoutes(r.engine, &routes.StatisticsRouteConfig{
		StatisticsHandler: r.deps.StatisticsHandler,
		PageHandler:       r.deps.PageHandler,
		AuthMiddleware:    r.deps.AuthMiddleware,
		RateLimiter:       r.deps.RateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
