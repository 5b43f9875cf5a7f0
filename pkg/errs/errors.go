// Package errs defines the error taxonomy shared by the oracle and the layout codec.
//
// Every failure is an *Error carrying a stable Code. Errors match by code, so callers
// test with errors.Is against the exported sentinels regardless of the message:
//
//	if errors.Is(err, errs.ErrEmptyPool) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeDivisionByZero     = "DIVISION_BY_ZERO"
	CodeEmptyPool          = "EMPTY_POOL"
	CodeLengthMismatch     = "LENGTH_MISMATCH"
	CodeUnknownInstruction = "UNKNOWN_INSTRUCTION"
	CodeUnknownSchema      = "UNKNOWN_SCHEMA"
)

// Error is a coded SDK error.
type Error struct {
	// Code identifies the error class.
	Code string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithCause attaches a cause and returns the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates a new coded error.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Sentinels for errors.Is.
var (
	ErrInvalidArgument    = New(CodeInvalidArgument, "invalid argument")
	ErrDivisionByZero     = New(CodeDivisionByZero, "division by zero")
	ErrEmptyPool          = New(CodeEmptyPool, "empty pool")
	ErrLengthMismatch     = New(CodeLengthMismatch, "buffer length does not match schema span")
	ErrUnknownInstruction = New(CodeUnknownInstruction, "unknown instruction")
	ErrUnknownSchema      = New(CodeUnknownSchema, "unknown schema")
)

// InvalidArgument reports a caller contract violation.
func InvalidArgument(format string, args ...any) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

// DivisionByZero reports a zero divisor.
func DivisionByZero(format string, args ...any) *Error {
	return New(CodeDivisionByZero, fmt.Sprintf(format, args...))
}

// EmptyPool reports a computation over a zero reserve or zero liquidity supply.
func EmptyPool(format string, args ...any) *Error {
	return New(CodeEmptyPool, fmt.Sprintf(format, args...))
}

// LengthMismatch reports a decode attempt on a buffer of the wrong size.
func LengthMismatch(schema string, want, got int) *Error {
	return New(CodeLengthMismatch, fmt.Sprintf("%s: want %d bytes, got %d", schema, want, got))
}

// UnknownInstruction reports an instruction name or tag missing from a registry.
func UnknownInstruction(format string, args ...any) *Error {
	return New(CodeUnknownInstruction, fmt.Sprintf(format, args...))
}

// UnknownSchema reports an account schema name missing from a registry.
func UnknownSchema(name string) *Error {
	return New(CodeUnknownSchema, fmt.Sprintf("schema %q is not registered", name))
}
