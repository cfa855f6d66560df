package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/api/metrics"
	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
	"github.com/paktrade/holdings-api/internal/core/token"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "token"

// contextKey is the echo context key the RequestContext is attached under.
const contextKey = "auth"

// RequestContext is the authenticated state attached to a request after the
// session middleware succeeds: the raw token plus the resolved account
// (password hash already excluded by the repository read). It lives for one
// request only and is never attached partially.
type RequestContext struct {
	Token   string
	Account *domain.Account
}

// RequestContextFrom returns the RequestContext attached by Session, or false
// when the middleware did not run or did not succeed.
func RequestContextFrom(c echo.Context) (*RequestContext, bool) {
	rc, ok := c.Get(contextKey).(*RequestContext)
	return rc, ok
}

// Session authenticates a request: it locates the token (cookie first, then
// bearer header), verifies it, resolves the account, checks the account is
// active, and attaches the RequestContext. Every failure terminates the
// request.
func Session(verifier ports.TokenVerifier, accounts ports.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			claims, err := verifier.VerifySession(raw)
			if err != nil {
				if errors.Is(err, token.ErrSessionExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				// token.ErrSessionExpired / token.ErrTokenInvalid; the central
				// error handler renders the distinguishing 401 body.
				return err
			}

			account, err := accounts.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrAccountNotFound) {
					return domain.ErrAccountNotActive
				}
				return err
			}
			if account.Status != domain.StatusActive {
				return domain.ErrAccountNotActive
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(contextKey, &RequestContext{Token: raw, Account: account})
			return next(c)
		}
	}
}

// extractToken prefers the HTTP-only session cookie and falls back to a
// bearer Authorization header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
