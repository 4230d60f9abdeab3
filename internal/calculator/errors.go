package calculator

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failures a calculation can report.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnsupportedOperation
	KindDivisionByZero
)

// String returns the label used for metric and span attributes.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindDivisionByZero:
		return "division_by_zero"
	default:
		return "unknown"
	}
}

// IsDomain reports whether the kind stems from well-formed input whose
// semantics are invalid, as opposed to malformed input.
func (k ErrorKind) IsDomain() bool {
	return k == KindUnsupportedOperation || k == KindDivisionByZero
}

// Sentinels for errors.Is. Every *Error matches the sentinel of its kind.
var (
	ErrValidation           = errors.New("validation error")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrDivisionByZero       = errors.New("division by zero")
)

// Error is the typed failure returned by DecodeRequest and Calculate.
// Message is the human-readable text surfaced to callers unchanged.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match an *Error against its kind's sentinel.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindValidation:
		return target == ErrValidation
	case KindUnsupportedOperation:
		return target == ErrUnsupportedOperation
	case KindDivisionByZero:
		return target == ErrDivisionByZero
	}
	return false
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func unsupportedOperationError(op string) *Error {
	return &Error{
		Kind:    KindUnsupportedOperation,
		Message: fmt.Sprintf("Invalid operation: %s. Supported operations: %s", op, supportedList),
	}
}

func divisionByZeroError() *Error {
	return &Error{Kind: KindDivisionByZero, Message: "Division by zero is not allowed"}
}

// KindOf extracts the ErrorKind from err. ok is false when err is not a
// calculation error.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind, true
	}
	return 0, false
}
