// Package middleware provides the gin middleware for the API server.
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/glossa-dev/glossa/internal/config"
	"github.com/glossa-dev/glossa/internal/models"
)

// RateLimiter holds rate limiting configuration and per-client state.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	config   config.RateLimitConfig
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(config config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
	}
}

// getLimiter gets or creates a rate limiter for a client.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[key]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(
		rate.Limit(rl.config.RequestsPerMinute)/60,
		rl.config.Burst,
	)
	rl.limiters[key] = limiter

	// Drop the entry after a while so idle clients do not accumulate.
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.limiters, key)
		rl.mu.Unlock()
	}()

	return limiter
}

// RateLimit middleware applies rate limiting per IP address.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	rl := NewRateLimiter(cfg)

	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())

		if !limiter.Allow() {
			retryAfter := time.Second
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.Header("X-Rate-Limit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
			c.Header("X-Rate-Limit-Remaining", "0")

			c.JSON(http.StatusTooManyRequests, models.APIResponse{
				Success: false,
				Error: &models.APIError{
					Code:    "RATE_LIMIT_EXCEEDED",
					Message: "Rate limit exceeded. Please try again later.",
					Details: fmt.Sprintf("Limit: %d requests per minute", cfg.RequestsPerMinute),
				},
			})
			c.Abort()
			return
		}

		c.Header("X-Rate-Limit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Next()
	}
}
