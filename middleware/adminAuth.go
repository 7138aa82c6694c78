package middleware

import (
	"context"
	"net/http"
	"time"

	userRepo "needmeet/database/repository/user"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates admin endpoints. It requires JWTAuthMiddleware to
// have run first and rejects principals whose account is not flagged admin.
func AdminAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		usr, err := users.GetByID(ctx, userID)
		if err != nil || usr == nil || !usr.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
