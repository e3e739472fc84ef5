package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/infrastructure/auth"
	"github.com/orris-inc/statsboard/internal/infrastructure/consoleapi"
	"github.com/orris-inc/statsboard/internal/shared/errors"
	"github.com/orris-inc/statsboard/internal/shared/logger"
	"github.com/orris-inc/statsboard/internal/shared/utils"
)

const ContextKeyAdminSubject = "admin_subject"

type AuthMiddleware struct {
	jwtService *auth.JWTService // nil disables verification
	cookieName string
	logger     logger.Interface
}

// NewAuthMiddleware creates the admin guard. With a nil jwtService every
// request passes, which suits a dashboard deployed behind the console's own
// reverse proxy.
func NewAuthMiddleware(jwtService *auth.JWTService, cookieName string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireAdmin admits requests carrying an admin token and forwards the
// caller's credentials to the console API.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := m.authorization(c)

		if m.jwtService != nil {
			if authorization == "" {
				utils.AbortWithError(c, errors.NewUnauthorizedError("missing authorization token"))
				return
			}

			token, ok := strings.CutPrefix(authorization, "Bearer ")
			if !ok || token == "" {
				utils.AbortWithError(c, errors.NewUnauthorizedError("invalid authorization header format"))
				return
			}

			claims, err := m.jwtService.VerifyAdmin(token)
			if err != nil {
				m.logger.Warnw("rejected admin token", "path", c.Request.URL.Path, "error", err)
				if stderrors.Is(err, auth.ErrNotAdmin) {
					utils.AbortWithError(c, errors.NewForbiddenError("admin role required"))
					return
				}
				utils.AbortWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
				return
			}
			c.Set(ContextKeyAdminSubject, claims.Subject)
		}

		if authorization != "" {
			ctx := consoleapi.WithAuthorization(c.Request.Context(), authorization)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// authorization reads the Authorization header, falling back to the token cookie.
func (m *AuthMiddleware) authorization(c *gin.Context) string {
	if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
		return header
	}
	if m.cookieName == "" {
		return ""
	}
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return "Bearer " + token
	}
	return ""
}
