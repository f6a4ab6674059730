package middleware

import (
	"strings"

	"github.com/dhu2022-dev/mental-health-checkin/response"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware guards the ingestion endpoint with a static key. The key
// may arrive as X-Api-Key, an Authorization bearer token, or a ?key= query
// parameter (Shortcuts makes headers awkward). An empty configured key
// disables the check entirely.
func APIKeyMiddleware(configuredKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if configuredKey == "" {
			c.Next()
			return
		}

		if providedKey(c) != configuredKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func providedKey(c *gin.Context) string {
	if header := c.GetHeader("X-Api-Key"); header != "" {
		return strings.TrimSpace(header)
	}
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return strings.TrimSpace(header[len("bearer "):])
		}
		return strings.TrimSpace(header)
	}
	return c.Query("key")
}
