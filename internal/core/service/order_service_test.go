package service

import (
	"context"
	"errors"
	"testing"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	created := *o
	created.ID = "ord_1"
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) ListByAccount(_ context.Context, accountID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.AccountID == accountID {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestOrderService_Create_NormalizesMode(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	o, err := svc.Create(context.Background(), ports.CreateOrderInput{
		AccountID: "acc_1",
		Name:      "OGDC",
		Qty:       10,
		Price:     120,
		Mode:      "buy",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.Mode != domain.OrderBuy {
		t.Fatalf("mode = %q, want BUY", o.Mode)
	}
	if o.CreatedAt.IsZero() {
		t.Fatalf("created_at not set")
	}
}

func TestOrderService_Create_InvalidMode(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo)

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		AccountID: "acc_1",
		Name:      "OGDC",
		Qty:       10,
		Price:     120,
		Mode:      "hold",
	})
	if !errors.Is(err, domain.ErrInvalidOrderMode) {
		t.Fatalf("expected ErrInvalidOrderMode, got %v", err)
	}
}
