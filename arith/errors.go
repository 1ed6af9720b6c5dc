package arith

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes arithmetic failures.
type ErrorCode string

const (
	// CodeInvariantViolation indicates a value outside its domain.
	CodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"

	// CodeOverflow indicates a result above the width's maximum.
	CodeOverflow ErrorCode = "OVERFLOW"

	// CodeUnderflow indicates a result below the width's minimum.
	CodeUnderflow ErrorCode = "UNDERFLOW"

	// CodeDivisionByZero indicates a zero divisor.
	CodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// CodeDivisionOverflow indicates MIN divided by -1.
	CodeDivisionOverflow ErrorCode = "DIVISION_OVERFLOW"

	// CodeNegativeSqrt indicates a square root of a negative input.
	CodeNegativeSqrt ErrorCode = "NEGATIVE_SQRT_INPUT"

	// CodeWidthMismatch indicates an operand wider than the result width,
	// or a widening conversion to a narrower backing.
	CodeWidthMismatch ErrorCode = "WIDTH_MISMATCH"
)

// Sentinels for errors.Is matching. Only the Code is compared.
var (
	ErrInvariantViolation = &Error{Code: CodeInvariantViolation}
	ErrOverflow           = &Error{Code: CodeOverflow}
	ErrUnderflow          = &Error{Code: CodeUnderflow}
	ErrDivisionByZero     = &Error{Code: CodeDivisionByZero}
	ErrDivisionOverflow   = &Error{Code: CodeDivisionOverflow}
	ErrNegativeSqrt       = &Error{Code: CodeNegativeSqrt}
	ErrWidthMismatch      = &Error{Code: CodeWidthMismatch}
)

// Error is the single error type produced by boundint packages.
type Error struct {
	// Code identifies the failure kind.
	Code ErrorCode

	// Op names the operation that failed (e.g. "add", "div_floor").
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Op)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates an Error.
func New(code ErrorCode, op, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: code, Op: op, Message: msg}
}

// CodeOf returns the Code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
