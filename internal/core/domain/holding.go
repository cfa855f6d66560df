package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Exchange identifies the market a holding is listed on.
type Exchange string

const (
	ExchangePSX    Exchange = "PSX"
	ExchangeNASDAQ Exchange = "NASDAQ"
	ExchangeNYSE   Exchange = "NYSE"
	ExchangeLSE    Exchange = "LSE"
	ExchangeKSE    Exchange = "KSE"
)

// Sectors recognised for holdings classification.
var Sectors = []string{
	"Banking", "Energy", "Cement", "Textile", "Technology",
	"Chemical", "Food", "Automobile", "Other",
}

var ErrHoldingNotFound = errors.New("holding not found")
var ErrDuplicateHolding = errors.New("holding already exists")
var ErrInvalidSymbol = errors.New("invalid stock symbol")

// symbolPattern matches listed symbols such as "OGDC" or "FFBL.IS".
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z]{1,3})?$`)

// Holding is a position held by one account in one listed symbol.
// Derived values (current value, profit/loss) are intentionally absent here;
// they are computed in a read-time projection, not stored.
type Holding struct {
	ID                  string    `json:"id" bson:"_id,omitempty"`
	AccountID           string    `json:"account_id" bson:"account_id"`
	Symbol              string    `json:"symbol" bson:"symbol"`
	Exchange            Exchange  `json:"exchange" bson:"exchange"`
	Sector              string    `json:"sector" bson:"sector"`
	IsShariaCompliant   bool      `json:"isShariaCompliant" bson:"is_sharia_compliant"`
	Quantity            float64   `json:"quantity" bson:"quantity"`
	AveragePrice        float64   `json:"average_price" bson:"average_price"`
	CurrentPrice        float64   `json:"current_price" bson:"current_price"`
	NetChangePercent    float64   `json:"net_change_percent" bson:"net_change_percent"`
	DayChangePercent    float64   `json:"day_change_percent" bson:"day_change_percent"`
	AnnualDividendYield float64   `json:"annual_dividend_yield" bson:"annual_dividend_yield"`
	PurchaseDate        time.Time `json:"purchase_date" bson:"purchase_date"`
	LastUpdated         time.Time `json:"last_updated" bson:"last_updated"`
}

// NormalizeSymbol uppercases a symbol and, for PSX listings, strips any
// market suffix (e.g. "ogdc.is" becomes "OGDC"). Returns ErrInvalidSymbol
// when the result does not match the listed-symbol format.
func NormalizeSymbol(symbol string, exchange Exchange) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if exchange == ExchangePSX {
		s, _, _ = strings.Cut(s, ".")
	}
	if !symbolPattern.MatchString(s) {
		return "", ErrInvalidSymbol
	}
	return s, nil
}

// ValidSector reports whether a sector name is one of the recognised sectors.
func ValidSector(sector string) bool {
	for _, s := range Sectors {
		if s == sector {
			return true
		}
	}
	return false
}
