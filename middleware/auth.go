// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"kycdesk/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware validates the staff bearer token: signature,
// claims, and the cached token hash (revocation check). On success the
// staff ID, role and agency land in the gin context for the handlers.
func JWTAuthStaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, role, agencyID, err := utils.ExtractStaffClaims(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Revocation check against the auth cache.
		cacheKey := utils.AuthCachePrefix + staffID
		cachedHash, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token revoked or expired",
			})
			return
		}
		// Refresh TTL on active use.
		_ = utils.GetAuthCacheClient().Expire(ctx, cacheKey, time.Hour).Err()

		c.Set("staffID", staffID)
		c.Set("role", role)
		c.Set("agencyID", agencyID)
		c.Next()
	}
}
