package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/core/ports"
)

// HoldingHandler handles HTTP requests for holdings.
type HoldingHandler struct {
	service ports.HoldingService
}

func NewHoldingHandler(service ports.HoldingService) *HoldingHandler {
	return &HoldingHandler{service: service}
}

type createHoldingRequest struct {
	Symbol              string  `json:"symbol"                validate:"required"`
	Exchange            string  `json:"exchange"              validate:"omitempty,oneof=PSX NASDAQ NYSE LSE KSE"`
	Sector              string  `json:"sector"                validate:"required"`
	IsShariaCompliant   bool    `json:"isShariaCompliant"`
	Quantity            float64 `json:"quantity"              validate:"min=0"`
	AveragePrice        float64 `json:"average_price"         validate:"required,gt=0"`
	CurrentPrice        float64 `json:"current_price"         validate:"required,gt=0"`
	NetChangePercent    float64 `json:"net_change_percent"`
	DayChangePercent    float64 `json:"day_change_percent"`
	AnnualDividendYield float64 `json:"annual_dividend_yield" validate:"min=0"`
}

type holdingResponse struct {
	Symbol              string    `json:"symbol"`
	Exchange            string    `json:"exchange"`
	Sector              string    `json:"sector"`
	IsShariaCompliant   bool      `json:"isShariaCompliant"`
	Quantity            float64   `json:"quantity"`
	AveragePrice        float64   `json:"average_price"`
	CurrentPrice        float64   `json:"current_price"`
	CurrentValue        float64   `json:"current_value"`
	ProfitLoss          float64   `json:"profit_loss"`
	ProfitLossPercent   float64   `json:"profit_loss_percent"`
	NetChangePercent    float64   `json:"net_change_percent"`
	DayChangePercent    float64   `json:"day_change_percent"`
	AnnualDividendYield float64   `json:"annual_dividend_yield"`
	PurchaseDate        time.Time `json:"purchase_date"`
	LastUpdated         time.Time `json:"last_updated"`
}

type listHoldingsResponse struct {
	Success  bool              `json:"success"`
	Holdings []holdingResponse `json:"holdings"`
}

// List handles GET /v1/holdings.
//
// @Summary      List the authenticated account's holdings
// @Tags         holdings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listHoldingsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /v1/holdings [get]
func (h *HoldingHandler) List(c echo.Context) error {
	rc, err := ctxAuth(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListByAccount(c.Request().Context(), rc.Account.ID)
	if err != nil {
		return err
	}

	holdings := make([]holdingResponse, 0, len(views))
	for _, v := range views {
		holdings = append(holdings, holdingResponse{
			Symbol:              v.Symbol,
			Exchange:            v.Exchange,
			Sector:              v.Sector,
			IsShariaCompliant:   v.IsShariaCompliant,
			Quantity:            v.Quantity,
			AveragePrice:        v.AveragePrice,
			CurrentPrice:        v.CurrentPrice,
			CurrentValue:        v.CurrentValue,
			ProfitLoss:          v.ProfitLoss,
			ProfitLossPercent:   v.ProfitLossPercent,
			NetChangePercent:    v.NetChangePercent,
			DayChangePercent:    v.DayChangePercent,
			AnnualDividendYield: v.AnnualDividendYield,
			PurchaseDate:        v.PurchaseDate,
			LastUpdated:         v.LastUpdated,
		})
	}

	return c.JSON(http.StatusOK, listHoldingsResponse{Success: true, Holdings: holdings})
}

// Create handles POST /v1/holdings.
//
// @Summary      Record a new holding
// @Tags         holdings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHoldingRequest  true  "Holding details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /v1/holdings [post]
func (h *HoldingHandler) Create(c echo.Context) error {
	rc, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req createHoldingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	holding, err := h.service.Create(c.Request().Context(), ports.CreateHoldingInput{
		AccountID:           rc.Account.ID,
		Symbol:              req.Symbol,
		Exchange:            req.Exchange,
		Sector:              req.Sector,
		IsShariaCompliant:   req.IsShariaCompliant,
		Quantity:            req.Quantity,
		AveragePrice:        req.AveragePrice,
		CurrentPrice:        req.CurrentPrice,
		NetChangePercent:    req.NetChangePercent,
		DayChangePercent:    req.DayChangePercent,
		AnnualDividendYield: req.AnnualDividendYield,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"symbol":  holding.Symbol,
	})
}
