package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/admin"
	"github.com/orris-inc/statsboard/internal/interfaces/http/handlers/dashboard"
	"github.com/orris-inc/statsboard/internal/interfaces/http/middleware"
)

// StatisticsRouteConfig holds dependencies for statistics routes
type StatisticsRouteConfig struct {
	StatisticsHandler *admin.StatisticsHandler
	PageHandler       *dashboard.PageHandler
	AuthMiddleware    *middleware.AuthMiddleware
	// RateLimiter guards cache invalidation; nil leaves it unlimited.
	RateLimiter *middleware.RateLimiter
}

// SetupStatisticsRoutes configures the dashboard page and the statistics API
func SetupStatisticsRoutes(engine *gin.Engine, config *StatisticsRouteConfig) {
	engine.StaticFS(dashboard.AssetsPath, dashboard.Assets())

	page := engine.Group("")
	page.Use(config.AuthMiddleware.RequireAdmin())
	{
		page.GET(dashboard.PagePath, config.PageHandler.GetStatisticsPage)
		page.GET(dashboard.FragmentPath, config.PageHandler.GetTrafficRankingFragment)
	}

	stats := engine.Group("/admin/statistics")
	stats.Use(config.AuthMiddleware.RequireAdmin())
	{
		stats.GET("", config.StatisticsHandler.GetStatistics)
		stats.GET("/traffic-ranking", config.StatisticsHandler.GetTrafficRanking)

		invalidate := []gin.HandlerFunc{}
		if config.RateLimiter != nil {
			invalidate = append(invalidate, config.RateLimiter.Limit())
		}
		invalidate = append(invalidate, config.StatisticsHandler.Invalidate)
		stats.POST("/invalidate", invalidate...)
	}
}
