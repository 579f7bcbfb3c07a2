package middleware

import (
	"strconv"
	"time"

	"gonotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware caps request volume per client address with a
// Redis fixed window (default 100 requests per 15 minutes). Redis
// outages fail open: limiting is a volume cap around the API, not part
// of the authorization core, and must not take the service down.
func RateLimitMiddleware(client *redis.Client, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			utils.TrackError("ratelimit", "redis_unavailable")
			c.Next()
			return
		}

		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		if count > limit {
			ttl, err := client.TTL(c.Request.Context(), key).Result()
			if err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			}
			utils.TrackError("ratelimit", "limit_exceeded")
			utils.TooManyRequests(c, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

// NewRateLimiterClient builds the Redis client for the rate limiter
// from a redis:// URL.
func NewRateLimiterClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
