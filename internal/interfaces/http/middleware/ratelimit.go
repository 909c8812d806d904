package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixwise/internal/infrastructure/ratelimit"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/utils"
)

// RateLimiter enforces per-IP request limits. All instances share the same
// Redis-backed window state, so the limit holds across a multi-instance
// deployment.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  config,
		logger:  logger.NewLogger(),
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.ClientIP(), rl.config)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking
			// all traffic.
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
