package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for the marketing site's browser requests.
//
// SECURITY: only origins in allowed are echoed back. Outside production the
// local Next.js dev servers are accepted as well.
func CORSMiddleware(allowed []string, isProduction bool) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed)+3)
	for _, o := range allowed {
		origins[o] = true
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		isAllowed := origin == "" || origins[origin] || (!isProduction && devOrigins[origin])

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-ID, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
