package market

import (
	"strings"

	"github.com/finchat-kr/finchat/internal/quotes"
)

// Korean exchange suffixes (KOSPI, KOSDAQ).
const (
	suffixKOSPI  = ".KS"
	suffixKOSDAQ = ".KQ"
)

// Classify decides whether a free-form symbol refers to a Korean or US
// instrument. The lookup is a closed, hard-coded token list, not a
// general classifier: anything it does not recognize defaults to US.
func Classify(symbol string) quotes.Market {
	upper := strings.ToUpper(strings.TrimSpace(symbol))

	// Exchange suffix wins immediately
	if strings.Contains(upper, suffixKOSPI) || strings.Contains(upper, suffixKOSDAQ) {
		return quotes.MarketKR
	}

	lower := strings.ToLower(strings.TrimSpace(symbol))
	for _, entry := range krStocks {
		if strings.Contains(lower, entry.Token) || strings.Contains(lower, entry.ID) {
			return quotes.MarketKR
		}
	}

	return quotes.MarketUS
}
