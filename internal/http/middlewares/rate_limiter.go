package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// RateLimiter limits requests per client IP over a fixed window. With a
// redis client the counters are shared across instances; without one they
// live in process memory.
func RateLimiter(limit int, window time.Duration, redis rueidis.Client) echo.MiddlewareFunc {
	if redis != nil {
		return redisRateLimiter(limit, window, redis)
	}
	return memoryRateLimiter(limit, window)
}

func memoryRateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

func redisRateLimiter(limit int, window time.Duration, redis rueidis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rate:" + c.RealIP()

			count, err := redis.Do(ctx, redis.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				// Redis being down should not take the API with it.
				return next(c)
			}

			if count == 1 {
				_ = redis.Do(
					ctx,
					redis.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error()
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
