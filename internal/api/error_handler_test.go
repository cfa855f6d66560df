package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/service"
	"github.com/paktrade/holdings-api/internal/core/token"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json envelope: %v: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestErrorHandler_Envelope(t *testing.T) {
	rec, body := render(t, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["success"] != false {
		t.Fatalf("expected success false, got %v", body["success"])
	}
	if body["message"] != "Internal Server Error" {
		t.Fatalf("internal cause must not leak: %v", body["message"])
	}
	if len(body) != 2 {
		t.Fatalf("envelope must carry exactly success and message: %v", body)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"wrapped invalid credentials", errors.Join(errors.New("ctx"), domain.ErrInvalidCredentials), http.StatusUnauthorized, "Invalid credentials"},
		{"session expired", token.ErrSessionExpired, http.StatusUnauthorized, "Session expired, please login again"},
		{"token invalid", token.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
		{"account exists", domain.ErrAccountExists, http.StatusBadRequest, "User already exists"},
		{"account not active", domain.ErrAccountNotActive, http.StatusForbidden, "Account not active or invalid"},
		{"compliance required", domain.ErrComplianceRequired, http.StatusForbidden, "This action requires Sharia-compliant account"},
		{"duplicate holding", domain.ErrDuplicateHolding, http.StatusBadRequest, "Holding already exists"},
		{"invalid symbol", domain.ErrInvalidSymbol, http.StatusBadRequest, "Invalid stock symbol"},
		{"invalid order mode", domain.ErrInvalidOrderMode, http.StatusBadRequest, "Invalid order mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := render(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, body["message"])
			}
			if body["success"] != false {
				t.Fatalf("expected success false")
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := render(t, &service.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["message"] != "Password must be at least 8 characters" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusTooManyRequests, "Too many attempts, please try again later"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if body["message"] != "Too many attempts, please try again later" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
