package middleware

import (
	"errors"   // Store error comparison
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"moneywise/internal/session" // Session store
	"moneywise/internal/utils"   // Session token helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by SessionMiddleware
const (
	SessionIDKey = "sessionID"
	ViewKey      = "view"
	VersionKey   = "sessionVersion"
)

// SessionMiddleware resolves the session token and checks the session is still running
func SessionMiddleware(secret string, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		claims, err := utils.ParseSessionToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}
		sess, err := store.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Session has ended"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		c.Set(SessionIDKey, claims.SessionID) // Store session ID in context
		c.Set(ViewKey, claims.View)           // Store view in context
		c.Set(VersionKey, sess.Version)       // Committed version seen by this request
		c.Next()
	}
}
