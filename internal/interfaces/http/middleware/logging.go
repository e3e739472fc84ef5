package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/shared/logger"
)

// Logger logs every request once it completes, at a level matching its status.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if subject := c.GetString(ContextKeyAdminSubject); subject != "" {
			args = append(args, "admin", subject)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed successfully", args...)
		}
	}
}
