package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter allows limit requests per client in each fixed window. Clients
// are identified by their real IP.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return rateLimiter(limit, window, time.Now)
}

func rateLimiter(limit int, window time.Duration, now func() time.Time) echo.MiddlewareFunc {
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
			ts := now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || ts.Sub(b.start) > window {
				b = &bucket{start: ts}
				buckets[key] = b
			}

			if b.count >= limit {
				retryAfter := b.start.Add(window).Sub(ts)
				mu.Unlock()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			remaining := limit - b.count
			mu.Unlock()

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			return next(c)
		}
	}
}
