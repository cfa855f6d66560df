package service

import (
	"context"
	"time"

	"github.com/paktrade/holdings-api/internal/core/domain"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

type holdingService struct {
	repo ports.HoldingRepository
}

// NewHoldingService returns a HoldingService implementation.
func NewHoldingService(repo ports.HoldingRepository) ports.HoldingService {
	return &holdingService{repo: repo}
}

// Create normalizes the symbol, validates the sector, and persists the
// holding. Derived values are never written; see ListByAccount.
func (s *holdingService) Create(ctx context.Context, in ports.CreateHoldingInput) (*domain.Holding, error) {
	exchange := domain.Exchange(in.Exchange)
	if exchange == "" {
		exchange = domain.ExchangePSX
	}

	symbol, err := domain.NormalizeSymbol(in.Symbol, exchange)
	if err != nil {
		return nil, err
	}
	if !domain.ValidSector(in.Sector) {
		return nil, &ValidationError{Field: "sector", Message: "Invalid sector"}
	}
	if in.Quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Message: "Quantity cannot be negative"}
	}

	now := time.Now().UTC()
	holding := &domain.Holding{
		AccountID:           in.AccountID,
		Symbol:              symbol,
		Exchange:            exchange,
		Sector:              in.Sector,
		IsShariaCompliant:   in.IsShariaCompliant,
		Quantity:            in.Quantity,
		AveragePrice:        in.AveragePrice,
		CurrentPrice:        in.CurrentPrice,
		NetChangePercent:    in.NetChangePercent,
		DayChangePercent:    in.DayChangePercent,
		AnnualDividendYield: in.AnnualDividendYield,
		PurchaseDate:        now,
		LastUpdated:         now,
	}
	return s.repo.Create(ctx, holding)
}

// ListByAccount returns the account's holdings as read-time projections with
// the derived values computed from the stored quantity and prices.
func (s *holdingService) ListByAccount(ctx context.Context, accountID string) ([]ports.HoldingView, error) {
	holdings, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.HoldingView, 0, len(holdings))
	for _, h := range holdings {
		views = append(views, project(h))
	}
	return views, nil
}

// project computes the derived fields for one holding.
func project(h domain.Holding) ports.HoldingView {
	v := ports.HoldingView{
		Symbol:              h.Symbol,
		Exchange:            string(h.Exchange),
		Sector:              h.Sector,
		IsShariaCompliant:   h.IsShariaCompliant,
		Quantity:            h.Quantity,
		AveragePrice:        h.AveragePrice,
		CurrentPrice:        h.CurrentPrice,
		NetChangePercent:    h.NetChangePercent,
		DayChangePercent:    h.DayChangePercent,
		AnnualDividendYield: h.AnnualDividendYield,
		PurchaseDate:        h.PurchaseDate,
		LastUpdated:         h.LastUpdated,
	}
	v.CurrentValue = h.Quantity * h.CurrentPrice
	v.ProfitLoss = (h.CurrentPrice - h.AveragePrice) * h.Quantity
	if h.AveragePrice != 0 {
		v.ProfitLossPercent = (h.CurrentPrice - h.AveragePrice) / h.AveragePrice * 100
	}
	return v
}
