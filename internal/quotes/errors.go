package quotes

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a failed fetch so the stock service can
// translate it into a user-facing message without inspecting provider
// payloads.
type ErrorCategory string

const (
	// CategoryServiceKeyNotRegistered - 공공데이터포털 서비스 키 미등록 (fault code 30)
	CategoryServiceKeyNotRegistered ErrorCategory = "service_key_not_registered"
	// CategoryInvalidParameters - upstream rejected the request parameters
	CategoryInvalidParameters ErrorCategory = "invalid_parameters"
	// CategoryQuotaExceeded - upstream call quota exhausted
	CategoryQuotaExceeded ErrorCategory = "quota_exceeded"
	// CategoryNoDataInRange - zero rows for the requested date range
	CategoryNoDataInRange ErrorCategory = "no_data_in_range"
	// CategoryUnknownFault - fault envelope with an unrecognized reason code
	CategoryUnknownFault ErrorCategory = "unknown_fault"
	// CategoryServerError - HTTP 500 with no recognizable fault body
	CategoryServerError ErrorCategory = "server_error"
	// CategoryUpstreamError - upstream returned an explicit error message
	CategoryUpstreamError ErrorCategory = "upstream_error"
	// CategoryHTTPError - non-2xx status outside the cases above
	CategoryHTTPError ErrorCategory = "http_error"
	// CategoryUnsupportedSymbol - the symbol could not be resolved for its market
	CategoryUnsupportedSymbol ErrorCategory = "unsupported_symbol"
)

// QuoteError is a typed error raised by provider adapters and the
// symbol resolver. The stock service pattern-matches on Category.
type QuoteError struct {
	Category ErrorCategory
	Message  string
	Cause    error
}

// Error implements the error interface
func (e *QuoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *QuoteError) Unwrap() error {
	return e.Cause
}

// NewQuoteError creates a typed error
func NewQuoteError(category ErrorCategory, message string) *QuoteError {
	return &QuoteError{Category: category, Message: message}
}

// WrapQuoteError creates a typed error wrapping a cause
func WrapQuoteError(category ErrorCategory, message string, cause error) *QuoteError {
	return &QuoteError{Category: category, Message: message, Cause: cause}
}

// CategoryOf extracts the error category, or CategoryUnknownFault if
// err is not a QuoteError.
func CategoryOf(err error) ErrorCategory {
	var qe *QuoteError
	if errors.As(err, &qe) {
		return qe.Category
	}
	return CategoryUnknownFault
}
