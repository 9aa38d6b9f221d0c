package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/metrics"
)

// WindowCounter abstracts the fixed-window counter store (Redis).
type WindowCounter interface {
	Incr(ctx context.Context, key string) (count int64, remaining time.Duration, err error)
}

// RateLimit enforces a fixed-window per-IP limit across all routes. The
// limiter fails open: if the counter store errors, the request proceeds.
func RateLimit(counter WindowCounter, limit int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, remaining, err := counter.Incr(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count > int64(limit) {
				retryAfter := int(remaining.Seconds())
				if retryAfter < 0 {
					retryAfter = 0
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again shortly")
			}

			return next(c)
		}
	}
}
