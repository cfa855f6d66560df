package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	repo   ports.AccountRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.AccountRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Signup validates the payload, rejects duplicate emails, hashes the
// password, creates the account, and signs a session token for it.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Account, string, error) {
	in, err := ValidateSignup(in)
	if err != nil {
		return nil, "", err
	}

	_, err = s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, "", domain.ErrAccountExists
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:             in.Email,
		Username:          in.Username,
		PasswordHash:      string(hash),
		Phone:             in.Phone,
		IsShariaCompliant: in.IsShariaCompliant,
		Status:            domain.StatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, "", err
	}

	tok, err := s.issuer.IssueSession(created)
	if err != nil {
		return nil, "", err
	}
	return created, tok, nil
}

// Login verifies credentials and signs a session token. Account-absent and
// hash-mismatch both collapse to ErrInvalidCredentials so the responses are
// indistinguishable to a caller probing for registered emails.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.Account, string, error) {
	in, err := ValidateLogin(in)
	if err != nil {
		return nil, "", err
	}

	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	tok, err := s.issuer.IssueSession(account)
	if err != nil {
		return nil, "", err
	}
	return account, tok, nil
}
