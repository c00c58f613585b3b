package datago

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/finchat-kr/finchat/internal/quotes"
)

// The upstream occasionally answers with an XML fault envelope even on
// HTTP 200, sharing the channel with the JSON happy path. Decoding is
// an explicit branch keyed on the leading "<", never a JSON-parse
// fallthrough.

// faultEnvelope is the OpenAPI_ServiceResponse error document.
type faultEnvelope struct {
	XMLName xml.Name    `xml:"OpenAPI_ServiceResponse"`
	Header  faultHeader `xml:"cmmMsgHeader"`
}

type faultHeader struct {
	ErrMsg        string `xml:"errMsg"`
	ReturnAuthMsg string `xml:"returnAuthMsg"`
	ReasonCode    string `xml:"returnReasonCode"`
}

// Fault reason codes defined by 공공데이터포털.
const (
	faultCodeInvalidRequest   = "10"
	faultCodeNoMandatoryParam = "11"
	faultCodeNoService        = "12"
	faultCodeQuotaExceeded    = "22"
	faultCodeKeyNotRegistered = "30"
)

// isFaultBody reports whether the body looks like an XML fault rather
// than JSON.
func isFaultBody(body []byte) bool {
	return strings.HasPrefix(strings.TrimSpace(string(body)), "<")
}

// decodeFault translates an XML fault body into a typed error.
func decodeFault(body []byte) error {
	var env faultEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return quotes.WrapQuoteError(quotes.CategoryUnknownFault,
			"unparsable fault response", err)
	}

	msg := env.Header.ReturnAuthMsg
	if msg == "" {
		msg = env.Header.ErrMsg
	}

	switch env.Header.ReasonCode {
	case faultCodeKeyNotRegistered:
		return quotes.NewQuoteError(quotes.CategoryServiceKeyNotRegistered, msg)
	case faultCodeQuotaExceeded:
		return quotes.NewQuoteError(quotes.CategoryQuotaExceeded, msg)
	case faultCodeInvalidRequest, faultCodeNoMandatoryParam, faultCodeNoService:
		return quotes.NewQuoteError(quotes.CategoryInvalidParameters, msg)
	default:
		return quotes.NewQuoteError(quotes.CategoryUnknownFault,
			fmt.Sprintf("fault code %s: %s", env.Header.ReasonCode, msg))
	}
}
