package ports

import (
	"context"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// FindByEmail returns the account including its password hash; it is the
	// only read that may surface the hash, and only to the login flow.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindByID resolves an account for an authenticated request. The password
	// hash is excluded from the result.
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
