package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware is driven entirely by env:
//   - ALLOW_ALL_ORIGINS: "1"/"true"/"yes"/"on" allows any origin (no credentials)
//   - ALLOWED_ORIGINS: comma-separated origin allowlist
//
// Unlisted cross-origin requests get no CORS headers at all.
func CORSMiddleware() gin.HandlerFunc {
	allowAll := func() bool {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_ALL_ORIGINS"))) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	}()

	allowed := map[string]bool{}
	for _, o := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Vary", "Origin")
		}

		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
