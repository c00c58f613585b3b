package stock

import (
	"strings"

	"github.com/finchat-kr/finchat/internal/market"
	"github.com/finchat-kr/finchat/internal/quotes"
)

// Fixed user-facing message templates. Translation from error category
// to message is one-way: callers never see raw upstream payloads or
// stack traces.
const (
	msgServiceKeyNotRegistered = "공공데이터포털 서비스 키가 등록되지 않았습니다. 발급받은 인증키를 확인해 주세요."
	msgQuotaExceeded           = "API 호출 한도를 초과했습니다. 잠시 후 다시 시도해 주세요."
	msgNoDataInRange           = "해당 기간의 거래 데이터가 없습니다. 다른 기간으로 다시 시도해 주세요."
	msgGeneric                 = "주가 데이터를 가져오지 못했습니다. 잠시 후 다시 시도해 주세요."

	msgUnsupportedPrefix = "지원하지 않는 종목입니다. 지원 종목: "
)

// userMessage maps a typed error to its message template.
func userMessage(err error) string {
	switch quotes.CategoryOf(err) {
	case quotes.CategoryServiceKeyNotRegistered:
		return msgServiceKeyNotRegistered
	case quotes.CategoryUnsupportedSymbol:
		return msgUnsupportedPrefix + strings.Join(market.SupportedKoreanNames(), ", ")
	case quotes.CategoryNoDataInRange:
		return msgNoDataInRange
	case quotes.CategoryQuotaExceeded:
		return msgQuotaExceeded
	default:
		return msgGeneric
	}
}
