package domain

import (
	"errors"
	"time"
)

// OrderMode distinguishes buy from sell orders.
type OrderMode string

const (
	OrderBuy  OrderMode = "BUY"
	OrderSell OrderMode = "SELL"
)

var ErrInvalidOrderMode = errors.New("invalid order mode")

// Order is a single buy/sell instruction recorded for an account.
type Order struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AccountID string    `json:"account_id" bson:"account_id"`
	Name      string    `json:"name" bson:"name"`
	Qty       float64   `json:"qty" bson:"qty"`
	Price     float64   `json:"price" bson:"price"`
	Mode      OrderMode `json:"mode" bson:"mode"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
