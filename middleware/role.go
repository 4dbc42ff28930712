package middleware

import (
	"net/http"

	"kycdesk/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles restricts an endpoint to the listed roles. Runs after
// JWTAuthStaffMiddleware, which puts the role in the context. Unknown or
// missing roles are rejected.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Missing role",
			})
			return
		}
		role, ok := roleVal.(string)
		if !ok || !allowed[models.Role(role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role",
			})
			return
		}
		c.Next()
	}
}
