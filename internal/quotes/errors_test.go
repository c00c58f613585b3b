package quotes

import (
	"errors"
	"fmt"
	"testing"
)

func TestQuoteErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *QuoteError
		want string
	}{
		{
			name: "without cause",
			err:  NewQuoteError(CategoryNoDataInRange, "no rows in range"),
			want: "no_data_in_range: no rows in range",
		},
		{
			name: "with cause",
			err:  WrapQuoteError(CategoryHTTPError, "unexpected status", errors.New("status 503")),
			want: "http_error: unexpected status: status 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{
			name: "direct quote error",
			err:  NewQuoteError(CategoryQuotaExceeded, "limit hit"),
			want: CategoryQuotaExceeded,
		},
		{
			name: "wrapped quote error",
			err:  fmt.Errorf("fetch failed: %w", NewQuoteError(CategoryServiceKeyNotRegistered, "key missing")),
			want: CategoryServiceKeyNotRegistered,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: CategoryUnknownFault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.err); got != tt.want {
				t.Errorf("CategoryOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := WrapQuoteError(CategoryHTTPError, "request failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestMarketCurrency(t *testing.T) {
	if got := MarketKR.Currency(); got != CurrencyKRW {
		t.Errorf("MarketKR.Currency() = %q, want %q", got, CurrencyKRW)
	}
	if got := MarketUS.Currency(); got != CurrencyUSD {
		t.Errorf("MarketUS.Currency() = %q, want %q", got, CurrencyUSD)
	}
}
