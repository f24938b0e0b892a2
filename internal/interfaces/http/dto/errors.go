package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:  http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	// Policy warnings, overridable with a force flag -> 409 Conflict
	"INSUFFICIENT_STOCK": http.StatusConflict,
	"CART_NOT_EMPTY":     http.StatusConflict,

	// Input validation -> 400 Bad Request
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD": http.StatusBadRequest,
	"INVALID_DISCOUNT":       http.StatusBadRequest,
	"INVALID_AMOUNT":         http.StatusBadRequest,
	"INVALID_PRODUCT_NAME":   http.StatusBadRequest,
	"INVALID_CUSTOMER_NAME":  http.StatusBadRequest,
	"INVALID_PRICE":          http.StatusBadRequest,
	"INVALID_UNIT_TYPE":      http.StatusBadRequest,
	"CUSTOMER_NAME_REQUIRED": http.StatusBadRequest,

	// Business rules -> 422 Unprocessable Entity
	"EMPTY_CART":    http.StatusUnprocessableEntity,
	"INVALID_STATE": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
