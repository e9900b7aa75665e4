package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"airease-backend/internal/handler/httperr"
	"airease-backend/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errors.New("rate limit exceeded")

type RateLimiter interface {
	Allow(ctx context.Context, ip string) cache.RateLimitResult
}

// RateLimit guards the auth endpoints per client IP. A nil limiter disables it.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		res := limiter.Allow(c.Request.Context(), c.ClientIP())
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter.Seconds()))))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests, please try again later", nil)
			return
		}
		c.Next()
	}
}
