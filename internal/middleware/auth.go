package middleware

import (
	"net/http"
	"strings"

	"furniture_store/internal/models"
	"furniture_store/internal/redis"

	"github.com/gin-gonic/gin"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
	ContextToken  = "session_token"
)

// Auth resolves the bearer token against the Redis session store and loads
// the caller's identity into the request context.
func Auth(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed authorization header"})
			return
		}

		session, err := sessions.GetSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextRole, session.Role)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireAdmin gates back-office routes. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// Role returns the authenticated user's role from the context.
func Role(c *gin.Context) models.UserRole {
	return models.UserRole(c.GetString(ContextRole))
}
