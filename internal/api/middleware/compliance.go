package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// RequireCompliance gates compliance-restricted actions: the authenticated
// account must carry the Sharia-compliance flag. Compose after Session only;
// a request that never went through Session is rejected, not passed through.
func RequireCompliance() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc, ok := RequestContextFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !rc.Account.IsShariaCompliant {
				// Rendered by the central error handler as 403.
				return domain.ErrComplianceRequired
			}
			return next(c)
		}
	}
}
