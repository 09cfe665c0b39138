package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
)

// Upstream (Shopify) error codes
const (
	// ErrCodeUpstreamUnauthorized is used when the platform rejects our credentials
	ErrCodeUpstreamUnauthorized = "ERR_UPSTREAM_UNAUTHORIZED"
	// ErrCodeUpstreamRateLimited is used when the platform throttles us
	ErrCodeUpstreamRateLimited = "ERR_UPSTREAM_RATE_LIMITED"
	// ErrCodeSyncFailed is used when a product sync fails for any other reason
	ErrCodeSyncFailed = "ERR_SYNC_FAILED"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Domain
// error codes are listed verbatim next to the generic API codes.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUpstreamUnauthorized: http.StatusBadGateway,
	ErrCodeUpstreamRateLimited:  http.StatusTooManyRequests,
	ErrCodeSyncFailed:           http.StatusBadGateway,

	// Domain validation errors -> 422 Unprocessable Entity
	"INVALID_SKU":          http.StatusUnprocessableEntity,
	"INVALID_PRICE":        http.StatusUnprocessableEntity,
	"CURRENCY_MISMATCH":    http.StatusUnprocessableEntity,
	"INVALID_INVENTORY":    http.StatusUnprocessableEntity,
	"INVALID_WEIGHT":       http.StatusUnprocessableEntity,
	"INVALID_STATUS":       http.StatusUnprocessableEntity,
	"INVALID_PRODUCT_DATA": http.StatusUnprocessableEntity,

	// Domain resource errors
	"PRODUCT_NOT_FOUND": http.StatusNotFound,
	"DUPLICATE_PRODUCT": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
