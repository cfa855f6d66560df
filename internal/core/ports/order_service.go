package ports

import (
	"context"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// CreateOrderInput carries a new buy/sell instruction into OrderService.
type CreateOrderInput struct {
	AccountID string
	Name      string
	Qty       float64
	Price     float64
	Mode      string
}

// OrderService records and lists orders for an account.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error)
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error)
}
