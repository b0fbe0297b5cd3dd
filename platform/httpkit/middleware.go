// Package httpkit provides HTTP middleware utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"
	"sync"
	"time"

	"civitas_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestTimer logs each request with method, path, status and latency.
func RequestTimer(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := float64(time.Since(start).Microseconds()) / 1000.0
		log.HTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), latency, c.ClientIP())
	}
}

// RateLimiter limits requests per client IP using a token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
	log      *logger.Logger
	lastSeen map[string]time.Time
}

// NewRateLimiter creates a per-IP rate limiter.
func NewRateLimiter(rps float64, burst int, log *logger.Logger) *RateLimiter {
	return &RateLimiter{
		clients:  make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		log:      log,
		lastSeen: make(map[string]time.Time),
	}
}

// Middleware returns the gin middleware enforcing the limit.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := r.limiterFor(ip)

		if !limiter.Allow() {
			r.log.RateLimitExceeded(ip, c.FullPath())
			Error(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (r *RateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastSeen[ip] = time.Now()

	limiter, ok := r.clients[ip]
	if !ok {
		limiter = rate.NewLimiter(r.rps, r.burst)
		r.clients[ip] = limiter

		// Opportunistic cleanup of stale entries.
		if len(r.clients) > 1024 {
			cutoff := time.Now().Add(-10 * time.Minute)
			for key, seen := range r.lastSeen {
				if seen.Before(cutoff) {
					delete(r.clients, key)
					delete(r.lastSeen, key)
				}
			}
		}
	}

	return limiter
}
