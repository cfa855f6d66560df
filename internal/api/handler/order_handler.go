package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for buy/sell orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Qty   float64 `json:"qty"   validate:"required,gt=0"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Mode  string  `json:"mode"  validate:"required"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Qty       float64   `json:"qty"`
	Price     float64   `json:"price"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

type listOrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
}

// Create handles POST /v1/orders.
//
// @Summary      Place a buy/sell order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	rc, err := ctxAuth(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		AccountID: rc.Account.ID,
		Name:      req.Name,
		Qty:       req.Qty,
		Price:     req.Price,
		Mode:      req.Mode,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderResponse{
		ID:        order.ID,
		Name:      order.Name,
		Qty:       order.Qty,
		Price:     order.Price,
		Mode:      string(order.Mode),
		CreatedAt: order.CreatedAt,
	})
}

// List handles GET /v1/orders.
//
// @Summary      List the authenticated account's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  map[string]any
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	rc, err := ctxAuth(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListByAccount(c.Request().Context(), rc.Account.ID)
	if err != nil {
		return err
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			ID:        o.ID,
			Name:      o.Name,
			Qty:       o.Qty,
			Price:     o.Price,
			Mode:      string(o.Mode),
			CreatedAt: o.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, listOrdersResponse{Success: true, Orders: out})
}
