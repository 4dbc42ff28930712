package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DeviceIDMiddleware requires the X-Device-ID header on the client-facing
// flow. The device ID keys the single KYC session slot, so a request
// without one has no slot to read or write.
func DeviceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader("X-Device-ID"))
		if deviceID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing X-Device-ID header",
			})
			return
		}
		c.Set("deviceID", deviceID)
		c.Next()
	}
}
