package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driftlog/backend/internal/logger"
)

// RateLimiter limits requests per client IP over a fixed window.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string]*clientWindow
	rate     int
	window   time.Duration
	name     string
}

type clientWindow struct {
	count    int
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per window.
// name identifies the limiter in log lines.
func NewRateLimiter(rate int, window time.Duration, name string) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string]*clientWindow),
		rate:     rate,
		window:   window,
		name:     name,
	}

	go rl.evictStale()

	return rl
}

// evictStale drops clients that have been idle for two full windows so the
// map does not grow without bound.
func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, info := range rl.requests {
			if now.Sub(info.lastSeen) > rl.window*2 {
				delete(rl.requests, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// allow records a request from ip and reports whether it is within the rate.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, exists := rl.requests[ip]
	if !exists || now.Sub(info.lastSeen) > rl.window {
		rl.requests[ip] = &clientWindow{count: 1, lastSeen: now}
		return true, 1
	}

	info.count++
	info.lastSeen = now
	return info.count <= rl.rate, info.count
}

// RateLimit limits general API traffic to 120 requests per minute per IP.
func RateLimit() gin.HandlerFunc {
	return limitWith(NewRateLimiter(120, time.Minute, "general"))
}

// RateLimitNarrator limits the narrated-insight endpoint, whose upstream
// text generation is slow and metered, to 10 requests per minute per IP.
func RateLimitNarrator() gin.HandlerFunc {
	return limitWith(NewRateLimiter(10, time.Minute, "narrator"))
}

func limitWith(limiter *RateLimiter) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(limiter.window.Seconds()))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed, count := limiter.allow(ip)
		if !allowed {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
				logger.String("limiter", limiter.name),
				logger.String("client_ip", ip),
				logger.Int("request_count", count),
				logger.Int("limit", limiter.rate),
			)

			c.Header("Retry-After", retryAfter)
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.rate))
			c.Header("X-RateLimit-Remaining", "0")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
