package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

func runCompliance(t *testing.T, rc *RequestContext) (error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if rc != nil {
		c.Set(contextKey, rc)
	}

	called := false
	handler := RequireCompliance()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	return handler(c), called
}

func TestRequireCompliance_Allows(t *testing.T) {
	rc := &RequestContext{
		Token:   "tok",
		Account: &domain.Account{ID: "acc_1", IsShariaCompliant: true, Status: domain.StatusActive},
	}

	err, called := runCompliance(t, rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// Non-compliant accounts surface the compliance error for the central
// handler to render as 403.
func TestRequireCompliance_Forbids(t *testing.T) {
	rc := &RequestContext{
		Token:   "tok",
		Account: &domain.Account{ID: "acc_1", IsShariaCompliant: false, Status: domain.StatusActive},
	}

	err, called := runCompliance(t, rc)
	if called {
		t.Fatalf("next should not be called")
	}
	if !errors.Is(err, domain.ErrComplianceRequired) {
		t.Fatalf("expected ErrComplianceRequired, got %v", err)
	}
}

func TestRequireCompliance_NoSession(t *testing.T) {
	err, called := runCompliance(t, nil)
	if called {
		t.Fatalf("next should not be called")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
