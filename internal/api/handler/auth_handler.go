package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/api/metrics"
	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

// AuditEnqueuer accepts audit events without blocking the request path.
type AuditEnqueuer interface {
	Enqueue(event ports.AuditEventInput)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	authService  ports.AuthService
	audit        AuditEnqueuer
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, audit AuditEnqueuer, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit, secureCookie: secureCookie}
}

// Signup creates a new account and establishes a session.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, tok, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:             req.Email,
		Password:          req.Password,
		Username:          req.Username,
		Phone:             req.Phone,
		IsShariaCompliant: req.IsShariaCompliant,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Email:     account.Email,
		AccountID: account.ID,
		Action:    domain.AuditSignup,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})

	c.SetCookie(sessionCookie(tok, h.secureCookie))
	return c.JSON(http.StatusCreated, signupResponse{
		Message: "User signed in successfully",
		Success: true,
		User: signupUser{
			Email:             account.Email,
			Username:          account.Username,
			Phone:             account.Phone,
			IsShariaCompliant: account.IsShariaCompliant,
		},
	})
}

// Login authenticates an existing user and establishes a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, tok, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			h.audit.Enqueue(ports.AuditEventInput{
				Email:     req.Email,
				Action:    domain.AuditLoginFailed,
				RemoteIP:  c.RealIP(),
				Timestamp: time.Now().UTC(),
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Enqueue(ports.AuditEventInput{
		Email:     account.Email,
		AccountID: account.ID,
		Action:    domain.AuditLogin,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	})

	c.SetCookie(sessionCookie(tok, h.secureCookie))
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Success: true,
		User: loginUser{
			Email:             account.Email,
			Username:          account.Username,
			IsShariaCompliant: account.IsShariaCompliant,
		},
	})
}
