package ports

import (
	"context"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// HoldingRepository defines the interface for holdings persistence.
type HoldingRepository interface {
	Create(ctx context.Context, holding *domain.Holding) (*domain.Holding, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Holding, error)
}
