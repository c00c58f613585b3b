package stock

import (
	"context"
	"time"

	"github.com/finchat-kr/finchat/internal/market"
	"github.com/finchat-kr/finchat/internal/quotes"
	"github.com/finchat-kr/finchat/pkg/logger"
)

// FetchResult is the single outcome shape handed to callers regardless
// of market. It is constructed once per query and not mutated after.
type FetchResult struct {
	Success      bool                    `json:"success"`
	Market       quotes.Market           `json:"market,omitempty"`
	Data         []quotes.StockDataPoint `json:"data,omitempty"`
	ErrorMessage string                  `json:"errorMessage,omitempty"`
}

// Service orchestrates classifier → resolver → provider and translates
// typed errors into user-facing messages.
// ⭐ SSOT: 주가 조회 흐름은 이 서비스에서만
type Service struct {
	krProvider quotes.Provider
	usProvider quotes.Provider
	logger     *logger.Logger
}

// NewService creates a stock data service backed by one provider per
// market.
func NewService(kr, us quotes.Provider, log *logger.Logger) *Service {
	return &Service{
		krProvider: kr,
		usProvider: us,
		logger:     log,
	}
}

// FetchStockData classifies the symbol, dispatches to the matching
// provider and returns one normalized result. Both date range ends are
// inclusive; start < end is the caller's responsibility. Every provider
// error is caught here and converted to a failure value — no error
// escapes to the caller. No retry, no cross-market fallback, no cache.
func (s *Service) FetchStockData(ctx context.Context, symbol string, start, end time.Time) FetchResult {
	mkt := market.Classify(symbol)

	log := s.logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"market": mkt,
	})

	var data []quotes.StockDataPoint
	var err error

	switch mkt {
	case quotes.MarketKR:
		// KR resolves explicitly; the provider expects a 6-digit code
		var code string
		code, err = market.Resolve(symbol, quotes.MarketKR)
		if err == nil {
			data, err = s.krProvider.Fetch(ctx, code, start, end)
		}
	default:
		// The US provider resolves free-form input internally and
		// never short-circuits on an unknown symbol
		data, err = s.usProvider.Fetch(ctx, symbol, start, end)
	}

	if err != nil {
		log.WithError(err).Warn("Stock data fetch failed")
		return FetchResult{
			Success:      false,
			ErrorMessage: userMessage(err),
		}
	}

	log.WithField("rows", len(data)).Debug("Stock data fetched")
	return FetchResult{
		Success: true,
		Market:  mkt,
		Data:    data,
	}
}
