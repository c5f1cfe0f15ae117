package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin matches origins of the form <scheme><subdomain><suffix>,
// parsed from a pattern like "https://*.example.com". Exactly one subdomain
// label may stand in for the wildcard.
type wildcardOrigin struct {
	scheme string // "https://" or "http://"
	suffix string // ".example.com"
}

// parseWildcardOrigin parses a wildcard origin pattern. It returns nil for
// anything that is not an explicit scheme followed by "*." and a domain of
// at least two labels; overly loose patterns are rejected rather than
// silently matching everything.
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	rest := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(rest, "*.") {
		return nil
	}

	suffix := rest[1:] // keep the leading dot
	if strings.Contains(suffix, "*") {
		return nil
	}
	if strings.Count(suffix, ".") < 2 {
		return nil
	}

	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether origin is this pattern's scheme plus exactly one
// subdomain label in front of the suffix.
func (w *wildcardOrigin) matches(origin string) bool {
	host, ok := strings.CutPrefix(origin, w.scheme)
	if !ok {
		return false
	}
	sub, ok := strings.CutSuffix(host, w.suffix)
	if !ok || sub == "" {
		return false
	}
	return !strings.ContainsAny(sub, "./")
}

// CORS handles cross-origin requests. Allowed origins come from the
// DRIFTLOG_CORS_ALLOWED_ORIGINS environment variable as a comma-separated
// list; entries may be exact origins or wildcard patterns like
// "https://*.example.com". An empty list allows all origins.
func CORS() gin.HandlerFunc {
	raw := os.Getenv("DRIFTLOG_CORS_ALLOWED_ORIGINS")
	allowAll := raw == ""

	var exact []string
	var wildcards []*wildcardOrigin
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if w := parseWildcardOrigin(entry); w != nil {
			wildcards = append(wildcards, w)
			continue
		}
		exact = append(exact, entry)
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exact {
			if origin == allowed {
				return true
			}
		}
		for _, w := range wildcards {
			if w.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Vary", "Origin")
		} else if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
