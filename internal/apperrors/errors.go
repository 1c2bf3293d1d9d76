package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found, or that
// it belongs to a different tenant (existence is never leaked across tenants).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a document's status was already advanced by a
// concurrent or prior settlement. Callers should treat it as "someone else
// already handled this", not as a failure to retry.
var ErrConflict = errors.New("status already advanced")

// ErrInsufficientStock indicates an order line requested more than is available.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrBadSignature indicates a webhook payload failed signature verification.
// No state is touched when this is returned.
var ErrBadSignature = errors.New("invalid webhook signature")

// ErrUpstreamUnavailable indicates the external payment gateway's API failed.
var ErrUpstreamUnavailable = errors.New("payment gateway unavailable")

// ErrForbidden indicates the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// InsufficientStockError carries enough detail for the caller to show an
// actionable message. It unwraps to ErrInsufficientStock.
type InsufficientStockError struct {
	ItemName  string
	SKU       string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", e.ItemName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// AppError wraps a lower-level error with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
