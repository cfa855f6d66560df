package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/service"
	"github.com/paktrade/holdings-api/internal/core/token"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Validation failures carry their own rule-naming message.
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	// Known domain errors → deterministic HTTP codes. Invalid credentials and
	// invalid/expired tokens never reveal more than these fixed messages.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, token.ErrSessionExpired):
		return http.StatusUnauthorized, "Session expired, please login again"
	case errors.Is(err, token.ErrTokenInvalid):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrAccountNotActive):
		return http.StatusForbidden, "Account not active or invalid"
	case errors.Is(err, domain.ErrComplianceRequired):
		return http.StatusForbidden, "This action requires Sharia-compliant account"
	case errors.Is(err, domain.ErrHoldingNotFound):
		return http.StatusNotFound, "Holding not found"
	case errors.Is(err, domain.ErrDuplicateHolding):
		return http.StatusBadRequest, "Holding already exists"
	case errors.Is(err, domain.ErrInvalidSymbol):
		return http.StatusBadRequest, "Invalid stock symbol"
	case errors.Is(err, domain.ErrInvalidOrderMode):
		return http.StatusBadRequest, "Invalid order mode"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
