package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds defensive HTTP headers to every response. HSTS is
// only emitted in production, where TLS is guaranteed.
func SecurityHeaders() gin.HandlerFunc {
	isProduction := os.Getenv("DRIFTLOG_SERVER_ENV") == "production"

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Journal contents are personal; responses must never be cached
		// by intermediaries.
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Header("Pragma", "no-cache")

		if isProduction {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		c.Next()
	}
}
