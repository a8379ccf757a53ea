package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"kelurahan-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const (
	ctxAdminIDKey       = "admin_id"
	ctxAdminUsernameKey = "admin_username"
)

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminIDKey, claims.AdminID)
		c.Set(ctxAdminUsernameKey, claims.Username)
		c.Next()
	}
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxAdminUsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
