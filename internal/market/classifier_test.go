package market

import (
	"testing"

	"github.com/finchat-kr/finchat/internal/quotes"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   quotes.Market
	}{
		{"korean name", "삼성전자", quotes.MarketKR},
		{"korean name embedded", "삼성전자 주가", quotes.MarketKR},
		{"english alias", "Samsung", quotes.MarketKR},
		{"english alias mixed case", "sAmSuNg electronics", quotes.MarketKR},
		{"known krx code", "005930", quotes.MarketKR},
		{"kospi suffix", "005930.KS", quotes.MarketKR},
		{"kosdaq suffix", "035720.kq", quotes.MarketKR},
		{"kospi suffix on unknown code", "123456.KS", quotes.MarketKR},
		{"us ticker", "AAPL", quotes.MarketUS},
		{"us company name", "Apple", quotes.MarketUS},
		{"unknown ticker defaults to US", "UNKNOWNTICKERXYZ", quotes.MarketUS},
		{"unknown six digit code defaults to US", "123456", quotes.MarketUS},
		{"empty string", "", quotes.MarketUS},
		{"kakao", "kakao", quotes.MarketKR},
		// Known limitation of substring matching: "nokia" contains "kia"
		{"substring false positive", "NOKIA", quotes.MarketKR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.symbol); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}
