package dto

import (
	"net/http"
	"strconv"
	"time"

	"github.com/spedire/rate-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnavailable indicates an unavailable dependency.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// ShippingRate is one quoted rate in the carrier callback contract. The
// price is the total in cents, serialized as a decimal string.
type ShippingRate struct {
	ServiceName string `json:"service_name" example:"Spedizione Personalizzata"`
	ServiceCode string `json:"service_code" example:"CUSTOM"`
	TotalPrice  string `json:"total_price" example:"8754"`
	Currency    string `json:"currency" example:"EUR"`
	Description string `json:"description" example:"Bancali: 1, fascia fino a 1000kg"`
} // @name ShippingRate

// RatesResponse is the rate quote response document. Its shape is fixed by
// the carrier callback contract: a "rates" array, plus a "debug" breakdown
// when diagnostics were requested.
type RatesResponse struct {
	Rates []ShippingRate   `json:"rates"`
	Debug *model.Breakdown `json:"debug,omitempty"`
} // @name RatesResponse

// NewRatesResponse builds the response document for one quote.
func NewRatesResponse(quote model.Quote, breakdown *model.Breakdown) RatesResponse {
	return RatesResponse{
		Rates: []ShippingRate{{
			ServiceName: quote.ServiceName,
			ServiceCode: quote.ServiceCode,
			TotalPrice:  strconv.FormatInt(quote.TotalPriceCents, 10),
			Currency:    quote.Currency,
			Description: quote.Description,
		}},
		Debug: breakdown,
	}
}

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"destination region is empty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
