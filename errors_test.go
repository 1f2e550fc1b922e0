package mathops

import (
	"errors"
	"strings"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	err := newOperationError(OpDivide, "division by zero", ErrDivisionByZero)

	msg := err.Error()
	if !strings.Contains(msg, OpDivide) {
		t.Errorf("Error() = %q, want operation name %q included", msg, OpDivide)
	}
	if !strings.Contains(msg, "division by zero") {
		t.Errorf("Error() = %q, want message included", msg)
	}
}

func TestOperationErrorWithoutCause(t *testing.T) {
	err := &OperationError{Op: OpAdd, Message: "boom"}
	if got := err.Error(); got != "add: boom" {
		t.Errorf("Error() = %q, want %q", got, "add: boom")
	}
}

func TestOperationErrorNil(t *testing.T) {
	var err *OperationError
	if got := err.Error(); got != "<nil>" {
		t.Errorf("nil Error() = %q, want <nil>", got)
	}
	if err.Unwrap() != nil {
		t.Error("nil Unwrap() returned non-nil")
	}
	if err.Is(ErrDivisionByZero) {
		t.Error("nil Is() returned true")
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	err := newOperationError(OpDivide, "division by zero", ErrDivisionByZero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("errors.Is did not match wrapped sentinel")
	}
}

func TestOperationErrorIsByOp(t *testing.T) {
	err := newOperationError(OpDivide, "division by zero", ErrDivisionByZero)

	if !errors.Is(err, &OperationError{Op: OpDivide}) {
		t.Error("errors.Is did not match on same operation")
	}
	if errors.Is(err, &OperationError{Op: OpAdd}) {
		t.Error("errors.Is matched different operation")
	}
}
