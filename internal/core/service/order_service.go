package service

import (
	"context"
	"strings"
	"time"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

type orderService struct {
	repo ports.OrderRepository
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(repo ports.OrderRepository) ports.OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	mode := domain.OrderMode(strings.ToUpper(strings.TrimSpace(in.Mode)))
	if mode != domain.OrderBuy && mode != domain.OrderSell {
		return nil, domain.ErrInvalidOrderMode
	}

	order := &domain.Order{
		AccountID: in.AccountID,
		Name:      strings.TrimSpace(in.Name),
		Qty:       in.Qty,
		Price:     in.Price,
		Mode:      mode,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, order)
}

func (s *orderService) ListByAccount(ctx context.Context, accountID string) ([]domain.Order, error) {
	return s.repo.ListByAccount(ctx, accountID)
}
