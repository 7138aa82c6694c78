package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware authenticates requests with a Bearer token. The token's
// subject becomes the request's principal ("userID" in the gin context).
// When an auth cache entry exists for the user, the presented token must
// match the cached hash; a cache miss falls back to plain JWT validation so
// the API stays usable when Redis is down.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed. Please log in again."})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed. Please log in again."})
			return
		}

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			cacheKey := utils.AuthCachePrefix + userID
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != utils.HashToken(tokenString) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				// Refresh TTL on a valid hit.
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			} else if err != redis.Nil {
				utils.GetLogger().Warn("Auth cache lookup failed; accepting validated token")
			}
		}

		c.Set("userID", userID)
		c.Next()
	}
}
