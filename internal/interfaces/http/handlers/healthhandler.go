package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/shared/version"
)

// HealthCheck handles GET /healthz
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "statsboard",
		"version": version.Current,
	})
}
