package mathops

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Divide when the denominator is zero.
// DivideSafe masks this condition with DivideFallback instead.
var ErrDivisionByZero = errors.New("mathops: division by zero")

// Operation names used in errors and metric labels.
const (
	OpAdd        = "add"
	OpMultiply   = "multiply"
	OpDivide     = "divide"
	OpDivideSafe = "divide_safe"
)

// OperationError carries the failing operation name alongside the cause.
type OperationError struct {
	Op      string
	Message string
	Cause   error
}

func newOperationError(op, message string, cause error) *OperationError {
	return &OperationError{Op: op, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares operation names for errors.Is.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*OperationError); ok {
		return e.Op == targetErr.Op
	}
	return false
}
