package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clbasaran/backend-ozmevsim/services/limiter"
	"github.com/clbasaran/backend-ozmevsim/utils"
)

// RateLimitMiddleware applies a fixed-window limit keyed by client IP. The
// counter lives behind limiter.Store so the limit holds across instances when
// backed by Redis.
type RateLimitMiddleware struct {
	store       limiter.Store
	maxRequests int
	window      time.Duration
	name        string
}

func NewRateLimitMiddleware(store limiter.Store, name string, maxRequests int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		store:       store,
		maxRequests: maxRequests,
		window:      window,
		name:        name,
	}
}

func (m *RateLimitMiddleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", m.name, utils.GetTrueClientIP(c))

		count, resetAt, err := m.store.Increment(c.Request.Context(), key, m.window)
		if err != nil {
			// A broken counter backend must not take the endpoint down
			c.Next()
			return
		}

		remaining := m.maxRequests - count
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", m.maxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))

		if count > m.maxRequests {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 0 {
				retryAfter = 0
			}

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "İstek limiti aşıldı. Lütfen daha sonra tekrar deneyin.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
