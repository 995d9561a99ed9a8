package entity

import (
	"errors"
	"fmt"
)

// ValidationError reports input that fails a business rule regardless
// of the aggregate's current state. Retrying with the same input will
// fail again.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StateConflictError reports a transition that is illegal from the
// aggregate's current status. The caller may retry after reloading
// fresher state.
type StateConflictError struct {
	Op     string
	Status string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("cannot %s in %s state", e.Op, e.Status)
}

// InsufficientStockError is a validation sub-kind raised when a stock
// operation requests more than is available or reserved.
type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// IsValidation reports whether err is a validation failure, including
// the insufficient-stock sub-kind.
func IsValidation(err error) bool {
	var v *ValidationError
	var s *InsufficientStockError
	return errors.As(err, &v) || errors.As(err, &s)
}

// IsStateConflict reports whether err is a state-conflict failure.
func IsStateConflict(err error) bool {
	var c *StateConflictError
	return errors.As(err, &c)
}

// IsInsufficientStock reports whether err is specifically an
// insufficient-stock failure.
func IsInsufficientStock(err error) bool {
	var s *InsufficientStockError
	return errors.As(err, &s)
}
