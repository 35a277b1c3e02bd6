package handlers

import "github.com/gin-gonic/gin"

// currentUserID retrieves the authenticated user's ID from the gin context
// (set by middleware.JWTAuthMiddleware).
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	if !exists || raw == nil {
		return "", false
	}
	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
