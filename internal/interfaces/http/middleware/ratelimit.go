package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mif-gmao/gmao/internal/shared/logger"
	"github.com/mif-gmao/gmao/internal/shared/utils"
)

// RateLimiter is a Redis fixed-window counter per client IP, shared by every
// instance behind the same Redis.
type RateLimiter struct {
	redisClient redis.UniversalClient
	limit       int
	window      time.Duration
	logger      logger.Interface
}

func NewRateLimiter(redisClient redis.UniversalClient, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		logger:      log,
	}
}

// Limit fails open when Redis is unavailable.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowBucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("gmao:ratelimit:ip:%s:%d", c.ClientIP(), windowBucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
