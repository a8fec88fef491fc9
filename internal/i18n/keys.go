// Package i18n provides internationalization support for the rate service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyInvalidDestination indicates a missing or blank destination.
	ErrKeyInvalidDestination = "error.invalid_destination"
	// ErrKeyInvalidWeight indicates a non-positive total shipment weight.
	ErrKeyInvalidWeight = "error.invalid_weight"
	// ErrKeyRegionNotFound indicates a destination with no tariff entries.
	ErrKeyRegionNotFound = "error.region_not_found"
	// ErrKeyTariffsUnavailable indicates no tariff snapshot could be obtained.
	ErrKeyTariffsUnavailable = "error.tariffs_unavailable"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
