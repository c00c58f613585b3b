package market

import (
	"errors"
	"testing"

	"github.com/finchat-kr/finchat/internal/quotes"
)

func TestResolveKR(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		want    string
		wantErr bool
	}{
		{"six digit code passes through", "005930", "005930", false},
		{"unknown six digit code passes through", "123456", "123456", false},
		{"kospi suffix stripped", "005930.KS", "005930", false},
		{"kosdaq suffix stripped lowercase", "035720.kq", "035720", false},
		{"korean name", "삼성전자", "005930", false},
		{"korean name embedded", "삼성전자 주가 알려줘", "005930", false},
		{"english alias", "Samsung", "005930", false},
		{"hynix", "SK Hynix", "000660", false},
		{"kakao", "카카오", "035720", false},
		{"no match", "존재하지않는회사", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.symbol, quotes.MarketKR)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q, KR) error = %v, wantErr %v", tt.symbol, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, KR) = %q, want %q", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestResolveKRNotFoundCategory(t *testing.T) {
	_, err := Resolve("no such company", quotes.MarketKR)
	if err == nil {
		t.Fatal("expected error for unresolvable KR symbol")
	}

	var qe *quotes.QuoteError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *quotes.QuoteError, got %T", err)
	}
	if qe.Category != quotes.CategoryUnsupportedSymbol {
		t.Errorf("Category = %v, want %v", qe.Category, quotes.CategoryUnsupportedSymbol)
	}
}

func TestResolveUS(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   string
	}{
		{"company name", "Apple", "AAPL"},
		{"company name embedded", "apple stock price", "AAPL"},
		{"executive alias", "Elon Musk", "TSLA"},
		{"google", "google", "GOOGL"},
		{"ticker passes through", "AAPL", "AAPL"},
		// US resolution never fails: unmatched input is upper-cased verbatim
		{"unknown input upper-cased", "unknowntickerxyz", "UNKNOWNTICKERXYZ"},
		{"whitespace trimmed", "  msft  ", "MSFT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.symbol, quotes.MarketUS)
			if err != nil {
				t.Fatalf("Resolve(%q, US) unexpected error: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, US) = %q, want %q", tt.symbol, got, tt.want)
			}
		})
	}
}

// First-match-wins over the ordered table: "google" and "alphabet" both
// map to GOOGL, and an input containing two different tokens resolves
// to whichever appears first in the table.
func TestResolveFirstMatchWins(t *testing.T) {
	got, err := Resolve("apple vs microsoft", quotes.MarketUS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "apple" precedes "microsoft" in the table
	if got != "AAPL" {
		t.Errorf("Resolve(%q, US) = %q, want AAPL (first table entry wins)", "apple vs microsoft", got)
	}

	gotKR, err := Resolve("삼성전자 카카오", quotes.MarketKR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKR != "005930" {
		t.Errorf("Resolve KR = %q, want 005930 (first table entry wins)", gotKR)
	}
}

func TestSupportedKoreanNames(t *testing.T) {
	names := SupportedKoreanNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty supported name list")
	}

	// Returned slice is a copy; mutating it must not affect the table
	names[0] = "changed"
	if SupportedKoreanNames()[0] == "changed" {
		t.Error("SupportedKoreanNames must return a copy")
	}
}
