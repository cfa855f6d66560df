package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paktrade/holdings-api/internal/api/metrics"
	"github.com/paktrade/holdings-api/internal/core/ports"
)

// TransactionHandler mints short-lived transaction tokens for
// compliance-sensitive operations. Routes using it sit behind the session
// middleware and the compliance gate.
type TransactionHandler struct {
	issuer ports.TokenIssuer
}

func NewTransactionHandler(issuer ports.TokenIssuer) *TransactionHandler {
	return &TransactionHandler{issuer: issuer}
}

type transactionTokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// IssueToken handles POST /v1/transactions/token. The request body is an
// arbitrary JSON object of transaction details; reserved claims are stamped
// by the issuer, never taken from the body.
//
// @Summary      Issue a 1-hour transaction token
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]any  true  "Transaction details"
// @Success      200   {object}  transactionTokenResponse
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /v1/transactions/token [post]
func (h *TransactionHandler) IssueToken(c echo.Context) error {
	if _, err := ctxAuth(c); err != nil {
		return err
	}

	details := map[string]any{}
	if err := c.Bind(&details); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	tok, err := h.issuer.IssueTransaction(details)
	if err != nil {
		return err
	}

	metrics.TransactionTokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, transactionTokenResponse{Success: true, Token: tok})
}
