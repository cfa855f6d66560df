package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/api/middleware"
)

// ctxAuth extracts the RequestContext attached by the session middleware and
// fast-fails before any service call. Its presence proves the middleware ran
// and the account passed the active-status check; a protected handler
// reached without it is a wiring bug, rejected with 401.
func ctxAuth(c echo.Context) (*middleware.RequestContext, error) {
	rc, ok := middleware.RequestContextFrom(c)
	if !ok || rc.Account == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return rc, nil
}
