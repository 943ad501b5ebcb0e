// Package ratelimit enforces a fixed-window request budget per client using
// Redis counters.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Counter increments a windowed counter and returns its new value
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements Counter with INCR and EXPIRE
type RedisCounter struct {
	redis *redis.Client
}

// NewRedisCounter creates a Redis-backed counter
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{redis: client}
}

// Incr increments key and gives it a window whenever it has none, so a failed
// EXPIRE is retried on the next hit instead of leaving a permanent counter.
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	count := incr.Val()
	if windowMissing(ttl.Val()) {
		if err := r.redis.Expire(ctx, key, window).Err(); err != nil {
			return count, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count, nil
}

// windowMissing reports whether a TTL reply means the key never expires.
// Redis answers -1 for a key without expiry.
func windowMissing(ttl time.Duration) bool {
	return ttl < 0
}

// Limiter allows at most limit requests per client in each window
type Limiter struct {
	counter Counter
	limit   int
	window  time.Duration
}

// NewLimiter creates a limiter
func NewLimiter(counter Counter, limit int, window time.Duration) *Limiter {
	return &Limiter{counter: counter, limit: limit, window: window}
}

// Allow reports whether the client may make another request
func (l *Limiter) Allow(ctx context.Context, client string) (bool, int, error) {
	count, err := l.counter.Incr(ctx, keyPrefix+client, l.window)
	if err != nil {
		return true, l.limit, err
	}
	remaining := max(l.limit-int(count), 0)
	return count <= int64(l.limit), remaining, nil
}

// Middleware rejects clients over budget with 429. Counter failures let the
// request through.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, remaining, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				c.Logger().Warnf("rate limit unavailable: %v", err)
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}
