package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrEmptyCart     = NewDomainError("EMPTY_CART", "Cart has no lines")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
)

// Policy warnings. These are refusals the caller may override by repeating
// the operation with an explicit force flag; they are never silent.
var (
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrCartNotEmpty      = NewDomainError("CART_NOT_EMPTY", "Cart already has lines")
)
