package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/paktrade/holdings-api/internal/api/metrics"
)

// Limiter abstracts the fixed-window counter (Redis).
type Limiter interface {
	Allow(ctx context.Context, scope, ip string) (bool, error)
}

// RateLimit throttles requests per client IP within scope. When the limiter
// backend is unreachable the request is allowed through: losing throttling
// beats taking down login.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many attempts, please try again later")
			}
			return next(c)
		}
	}
}
