package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/welfarehub/benefits-api/internal/services"
)

// SessionHashKey is the gin context key holding the anonymous session hash
const SessionHashKey = "sessionHash"

// AnonymousSession derives the anonymous session hash from the client IP and
// User-Agent and stores it in the request context. Handlers use it for view
// deduplication and search logging; no raw IP is ever persisted.
func AnonymousSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := services.SessionHash(c.ClientIP(), c.Request.UserAgent())
		c.Set(SessionHashKey, hash)
		c.Next()
	}
}

// GetSessionHash reads the session hash set by AnonymousSession
func GetSessionHash(c *gin.Context) string {
	if v, ok := c.Get(SessionHashKey); ok {
		if hash, ok := v.(string); ok {
			return hash
		}
	}
	return services.SessionHash(c.ClientIP(), c.Request.UserAgent())
}
