package middleware

import (
	"net/http" // HTTP status codes

	"moneywise/internal/domain" // View type

	"github.com/gin-gonic/gin" // Gin web framework
)

// ParentViewMiddleware only lets callers on the parent view through.
// It selects screens; it is not an access control boundary.
func ParentViewMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, _ := c.Get(ViewKey)
		if view != domain.ViewParent {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Switch to the parent view to use this screen"})
			return
		}
		c.Next()
	}
}
