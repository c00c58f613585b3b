package datago

import (
	"errors"
	"testing"

	"github.com/finchat-kr/finchat/internal/quotes"
)

func TestIsFaultBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"xml fault", `<OpenAPI_ServiceResponse></OpenAPI_ServiceResponse>`, true},
		{"xml with leading whitespace", "  \n<OpenAPI_ServiceResponse/>", true},
		{"json body", `{"response":{}}`, false},
		{"empty body", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFaultBody([]byte(tt.body)); got != tt.want {
				t.Errorf("isFaultBody(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestDecodeFault(t *testing.T) {
	tests := []struct {
		name     string
		authMsg  string
		code     string
		wantCat  quotes.ErrorCategory
	}{
		{"service key not registered", "SERVICE_KEY_IS_NOT_REGISTERED_ERROR", "30", quotes.CategoryServiceKeyNotRegistered},
		{"quota exceeded", "LIMITED_NUMBER_OF_SERVICE_REQUESTS_EXCEEDS_ERROR", "22", quotes.CategoryQuotaExceeded},
		{"invalid request", "INVALID_REQUEST_PARAMETER_ERROR", "10", quotes.CategoryInvalidParameters},
		{"missing mandatory param", "NO_MANDATORY_REQUEST_PARAMETERS_ERROR", "11", quotes.CategoryInvalidParameters},
		{"no such service", "NO_OPENAPI_SERVICE_ERROR", "12", quotes.CategoryInvalidParameters},
		{"unrecognized code", "DEADLINE_HAS_EXPIRED_ERROR", "31", quotes.CategoryUnknownFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(faultBody(tt.authMsg, tt.code))
			err := decodeFault(body)

			var qe *quotes.QuoteError
			if !errors.As(err, &qe) {
				t.Fatalf("expected *quotes.QuoteError, got %T", err)
			}
			if qe.Category != tt.wantCat {
				t.Errorf("Category = %v, want %v", qe.Category, tt.wantCat)
			}
		})
	}
}

func TestDecodeFaultUnparsable(t *testing.T) {
	err := decodeFault([]byte("<not-xml"))

	var qe *quotes.QuoteError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *quotes.QuoteError, got %T", err)
	}
	if qe.Category != quotes.CategoryUnknownFault {
		t.Errorf("Category = %v, want %v", qe.Category, quotes.CategoryUnknownFault)
	}
}

func faultBody(authMsg, code string) string {
	return `<OpenAPI_ServiceResponse>
	<cmmMsgHeader>
		<errMsg>SERVICE ERROR</errMsg>
		<returnAuthMsg>` + authMsg + `</returnAuthMsg>
		<returnReasonCode>` + code + `</returnReasonCode>
	</cmmMsgHeader>
</OpenAPI_ServiceResponse>`
}
