package quotes

import (
	"context"
	"time"
)

// Market identifies which exchange family a symbol belongs to.
type Market string

const (
	MarketKR Market = "KR"
	MarketUS Market = "US"
)

// Currency markers per market.
const (
	CurrencyKRW = "₩"
	CurrencyUSD = "$"
)

// Currency returns the currency marker for the market.
func (m Market) Currency() string {
	if m == MarketKR {
		return CurrencyKRW
	}
	return CurrencyUSD
}

// StockDataPoint represents one trading day of a stock.
//
// The usual low ≤ {open, close} ≤ high relation is the intent of the
// source data but is not validated here: providers may supply degenerate
// values (e.g. open == close when the opening price is unavailable) and
// those are preserved as-is.
type StockDataPoint struct {
	Date     time.Time `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   int64     `json:"volume"`
	Currency string    `json:"currency"`
}

// Provider fetches daily price data for one resolved symbol.
// Both date range ends are inclusive. Implementations perform exactly one
// outbound call per invocation and return all rows or a typed error,
// never a partial result.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, symbol string, start, end time.Time) ([]StockDataPoint, error)
}
