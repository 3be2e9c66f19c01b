package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"study-booking/internal/handler/httperr"
	"study-booking/internal/pkg/cookie"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = errs.New("admin session required")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxAdminKey = "admin_username"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the session cookie or a Bearer header.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Admin session required", nil)
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			return
		}

		c.Set(ctxAdminKey, username)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdmin(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminKey)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}
