package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/user"
)

// RequireProvider ensures the authenticated user holds the provider role.
// It MUST run after auth.AuthRequired.
func RequireProvider(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// The token carries the role claim; fall back to the database when a
		// token predates the role being issued.
		if auth.GetUserRole(c) == string(user.RoleProvider) {
			c.Next()
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		if u.Role != user.RoleProvider {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: provider access required"})
			return
		}

		c.Next()
	}
}
