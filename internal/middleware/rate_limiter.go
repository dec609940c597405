package middleware

import (
	"context"
	"strconv"
	"time"

	"ai-assessment/internal/cache"
	"ai-assessment/internal/config"
	"ai-assessment/internal/domain"
	"ai-assessment/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// SubmissionRateLimiter returns a fixed-window per-IP limiter. With a cache the
// counters are shared across instances; without one they live in process.
func SubmissionRateLimiter(c domain.Cache, cfg config.RateLimitConfig) fiber.Handler {
	if c == nil {
		return limiter.New(limiter.Config{
			Max:               cfg.Max,
			Expiration:        cfg.Window,
			LimiterMiddleware: limiter.FixedWindow{},
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return domain.NewRateLimitedError()
			},
		})
	}
	return NewCacheRateLimiter(c, cfg.Max, cfg.Window).Handler()
}

// CacheRateLimiter counts requests with INCR and starts the window with EXPIRE
// on the first hit.
type CacheRateLimiter struct {
	cache  domain.Cache
	max    int
	window time.Duration
}

func NewCacheRateLimiter(c domain.Cache, max int, window time.Duration) *CacheRateLimiter {
	return &CacheRateLimiter{cache: c, max: max, window: window}
}

// Handler fails open: a cache error lets the request through.
func (l *CacheRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		key := cache.RateLimitKey(c.IP())

		count, err := l.cache.Incr(ctx, key)
		if err != nil {
			logger.Get().Warn("Rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := l.cache.Expire(ctx, key, l.window); err != nil {
				logger.Get().Warn("Failed to start rate limit window", zap.String("key", key), zap.Error(err))
			}
		} else if count > int64(l.max) {
			l.restoreWindow(ctx, key)
		}

		remaining := int64(l.max) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("RateLimit-Limit", strconv.Itoa(l.max))
		c.Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(l.max) {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(l.window.Seconds())))
			logger.Get().Info("Rate limit exceeded", zap.String("ip", c.IP()), zap.Int64("count", count))
			return domain.NewRateLimitedError()
		}
		return c.Next()
	}
}

// restoreWindow sets the window on a counter that lost its first EXPIRE.
func (l *CacheRateLimiter) restoreWindow(ctx context.Context, key string) {
	ttl, err := l.cache.TTL(ctx, key)
	if err != nil || ttl >= 0 {
		return
	}
	if err := l.cache.Expire(ctx, key, l.window); err != nil {
		logger.Get().Warn("Failed to restore rate limit window", zap.String("key", key), zap.Error(err))
		return
	}
	logger.Get().Info("Restored missing rate limit window", zap.String("key", key))
}
