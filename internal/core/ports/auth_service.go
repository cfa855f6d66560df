package ports

import (
	"context"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// SignupInput carries the raw signup payload into AuthService.
type SignupInput struct {
	Email             string
	Password          string
	Username          string
	Phone             string
	IsShariaCompliant bool
}

// LoginInput carries the raw login payload into AuthService.
type LoginInput struct {
	Email    string
	Password string
}

type AuthService interface {
	// Signup validates the payload, creates the account, and returns it with
	// a signed session token.
	Signup(ctx context.Context, in SignupInput) (*domain.Account, string, error)
	// Login verifies credentials and returns the account with a signed
	// session token. Unknown email and wrong password are indistinguishable
	// in the returned error.
	Login(ctx context.Context, in LoginInput) (*domain.Account, string, error)
}
