package market

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/finchat-kr/finchat/internal/quotes"
)

var sixDigitCode = regexp.MustCompile(`^\d{6}$`)

// Resolve maps a classified symbol to the identifier the market's
// provider expects: a 6-digit KRX code for KR, an uppercase ticker for
// US. The US path never fails; the KR path returns an
// UnsupportedSymbol error when the closed lookup has no match.
func Resolve(symbol string, mkt quotes.Market) (string, error) {
	if mkt == quotes.MarketKR {
		return resolveKR(symbol)
	}
	return resolveUS(symbol), nil
}

func resolveKR(symbol string) (string, error) {
	s := stripExchangeSuffix(strings.TrimSpace(symbol))

	// Already a KRX code
	if sixDigitCode.MatchString(s) {
		return s, nil
	}

	lower := strings.ToLower(s)
	for _, entry := range krStocks {
		if strings.Contains(lower, entry.Token) {
			return entry.ID, nil
		}
	}

	return "", quotes.NewQuoteError(quotes.CategoryUnsupportedSymbol,
		fmt.Sprintf("no Korean listing matches %q", symbol))
}

func resolveUS(symbol string) string {
	lower := strings.ToLower(strings.TrimSpace(symbol))
	for _, entry := range usStocks {
		if strings.Contains(lower, entry.Token) {
			return entry.ID
		}
	}

	// Unmatched input becomes a candidate ticker as-is; the provider
	// decides whether it exists.
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func stripExchangeSuffix(s string) string {
	upper := strings.ToUpper(s)
	for _, suffix := range []string{suffixKOSPI, suffixKOSDAQ} {
		if strings.HasSuffix(upper, suffix) {
			return s[:len(s)-len(suffix)]
		}
	}
	return s
}
