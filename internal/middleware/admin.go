package middleware

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/auth" // Auth store for the admin session

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the stored admin session on each request.
// The session expires 24 hours after login; expiry is detected lazily here.
func AdminOnlyMiddleware(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin") // Get admin flag from the token claims
		// The token itself must carry the admin claim
		if !exists || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// The stored admin session must still be valid
		if !store.IsAdmin(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin session expired"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
