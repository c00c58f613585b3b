package dummy

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/finchat-kr/finchat/internal/quotes"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// Generator is the fallback provider used when a market's API
// credential is not configured. It produces a deterministic random
// walk per symbol so the UI stays usable without keys; determinism
// keeps repeated queries for the same symbol consistent.
type Generator struct {
	logger   *logger.Logger
	currency string
}

// NewGenerator creates a dummy provider emitting prices in the given
// currency marker.
func NewGenerator(currency string, log *logger.Logger) *Generator {
	return &Generator{logger: log, currency: currency}
}

// Name identifies this provider in logs and results.
func (g *Generator) Name() string {
	return "dummy"
}

// Fetch generates one data point per weekday in the inclusive range.
// The same NoDataInRange contract as the real providers applies when
// the range contains no weekdays.
func (g *Generator) Fetch(ctx context.Context, symbol string, start, end time.Time) ([]quotes.StockDataPoint, error) {
	rng := rand.New(rand.NewSource(seedFor(symbol)))

	price := basePrice(symbol, g.currency)

	var points []quotes.StockDataPoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}

		open := price
		// Daily move within ±3%
		price = price * (1 + (rng.Float64()-0.5)*0.06)
		closing := price

		high := open
		if closing > high {
			high = closing
		}
		high *= 1 + rng.Float64()*0.01

		low := open
		if closing < low {
			low = closing
		}
		low *= 1 - rng.Float64()*0.01

		points = append(points, quotes.StockDataPoint{
			Date:     time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
			Open:     round2(open),
			High:     round2(high),
			Low:      round2(low),
			Close:    round2(closing),
			Volume:   100_000 + rng.Int63n(10_000_000),
			Currency: g.currency,
		})
	}

	if len(points) == 0 {
		return nil, quotes.NewQuoteError(quotes.CategoryNoDataInRange,
			"no trading data in the requested range")
	}

	g.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"count":  len(points),
	}).Debug("Generated dummy prices")
	return points, nil
}

// seedFor derives a stable per-symbol seed.
func seedFor(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}

// basePrice picks a plausible starting price for the currency.
func basePrice(symbol string, currency string) float64 {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	n := float64(h.Sum32() % 1000)

	if currency == quotes.CurrencyKRW {
		return 10_000 + n*200 // 10,000 ~ 210,000원
	}
	return 20 + n/2 // $20 ~ $520
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
