package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sellerhub/backoffice-api/internal/utils"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

// RateLimitMiddleware implements fixed-window limits in Redis. It fails
// open: a Redis outage must not take the API down with it.
type RateLimitMiddleware struct {
	redis  *redis.Client
	logger *logger.Logger
}

func NewRateLimitMiddleware(redisClient *redis.Client, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redisClient,
		logger: logger,
	}
}

// UserRateLimit limits authenticated requests per user per minute. It must
// run after JWTAuth.
func (m *RateLimitMiddleware) UserRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromContext(c.Request.Context())
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "authentication required for rate limiting")
			return
		}

		m.enforce(c, fmt.Sprintf("rate_limit:user:%d", userID), limit)
	}
}

// GlobalRateLimit limits requests per client IP per minute and protects the
// unauthenticated surface (login, webhooks).
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.enforce(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit)
	}
}

func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)
		abortWithError(c, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}
