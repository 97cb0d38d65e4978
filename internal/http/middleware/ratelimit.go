package middleware

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig config for the Redis-based RPS limiter.
type RateLimitConfig struct {
	Redis     *redis.Client
	RPS       int           // requests per window per client address
	KeyPrefix string        // e.g. "rl:ip:"
	Window    time.Duration // usually 1s
}

// RateLimitMiddleware applies a simple fixed-window per-IP RPS limit.
// The tool is human-triggered and unauthenticated, so the client address
// is the only identity available. Allows everything when redis is not
// configured (dev) or the limit is zero.
func RateLimitMiddleware(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Window <= 0 {
		cfg.Window = time.Second
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:ip:"
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Redis == nil || cfg.RPS <= 0 {
				return next(c)
			}

			now := time.Now()
			key := cfg.KeyPrefix + c.RealIP() + ":" + strconv.FormatInt(now.Unix(), 10)

			// INCR and set expiry 2*window (safety)
			pipe := cfg.Redis.Pipeline()
			cnt := pipe.Incr(c.Request().Context(), key)
			pipe.Expire(c.Request().Context(), key, cfg.Window*2)
			_, err := pipe.Exec(c.Request().Context())
			if err != nil {
				// redis down must not block sends
				return next(c)
			}

			if cnt.Val() > int64(cfg.RPS) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limited"})
			}
			return next(c)
		}
	}
}
