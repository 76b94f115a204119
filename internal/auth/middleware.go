package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which RequireAuth stores the
// authenticated user's ID. Resource handlers derive ownership from this
// value and ignore any user_id supplied in request bodies.
const ContextUserID = "user_id"

// RequireAuth is a middleware that verifies the Authorization bearer token
// and sets the user ID for downstream handlers.
func RequireAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing authorization header",
			})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "malformed authorization header",
			})
			return
		}

		userID, err := GetUserIDFromToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the gin context.
// Only valid downstream of RequireAuth.
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}
