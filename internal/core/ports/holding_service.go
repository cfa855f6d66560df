package ports

import (
	"context"
	"time"

	"github.com/paktrade/holdings-api/internal/core/domain"
)

// CreateHoldingInput carries all data needed to record a new holding.
type CreateHoldingInput struct {
	AccountID           string
	Symbol              string
	Exchange            string
	Sector              string
	IsShariaCompliant   bool
	Quantity            float64
	AveragePrice        float64
	CurrentPrice        float64
	NetChangePercent    float64
	DayChangePercent    float64
	AnnualDividendYield float64
}

// HoldingView is the read-time projection of a holding. The derived fields
// (CurrentValue, ProfitLoss, ProfitLossPercent) are computed on read, never
// persisted.
type HoldingView struct {
	Symbol              string
	Exchange            string
	Sector              string
	IsShariaCompliant   bool
	Quantity            float64
	AveragePrice        float64
	CurrentPrice        float64
	CurrentValue        float64
	ProfitLoss          float64
	ProfitLossPercent   float64
	NetChangePercent    float64
	DayChangePercent    float64
	AnnualDividendYield float64
	PurchaseDate        time.Time
	LastUpdated         time.Time
}

// HoldingService manages holdings and their read-time projections.
type HoldingService interface {
	Create(ctx context.Context, in CreateHoldingInput) (*domain.Holding, error)
	ListByAccount(ctx context.Context, accountID string) ([]HoldingView, error)
}
