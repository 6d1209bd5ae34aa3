// File: api/errors.go
// Package api
// License: Apache-2.0
//
// Common error types and error handling utilities for the anyarr engine.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrTypeMismatch = fmt.Errorf("element type mismatch")
	ErrInvalidRange = fmt.Errorf("invalid range")
	ErrNotFound     = fmt.Errorf("not found")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeTypeMismatch
	ErrCodeInvalidRange
	ErrCodeNotFound
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps structured errors back onto the package sentinels so that
// errors.Is keeps working across the facade boundary.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeTypeMismatch:
		return ErrTypeMismatch
	case ErrCodeInvalidRange:
		return ErrInvalidRange
	case ErrCodeNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// NewError creates a structured error with the given code and message.
func NewError(code ErrorCode, message string, ctx map[string]any) *Error {
	return &Error{Code: code, Message: message, Context: ctx}
}

// Precondition panics with a formatted message. It marks a broken internal
// invariant: a bug in the engine or in how it was driven, never a data
// condition. Callers are not expected to recover from it.
func Precondition(format string, args ...any) {
	panic("anyarr: precondition violated: " + fmt.Sprintf(format, args...))
}
