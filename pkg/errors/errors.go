// Package errors provides structured error types for gitdiagram.
//
// Every failure surfaced by the render pipeline carries a machine-readable
// [Code] so callers can tell a bad diagram apart from a failed write or a
// drawing backend failure:
//   - INVALID_*: input or configuration rejected before anything is drawn
//   - IO_ERROR: a file could not be read or written
//   - RENDER_BACKEND: the drawing, encoding or graphviz backend failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "commit %d: branch %d out of range", i, b)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// File system errors
	ErrCodeIO           Code = "IO_ERROR"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Backend errors
	ErrCodeRenderBackend Code = "RENDER_BACKEND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsConfiguration reports whether err rejects the diagram or layout
// configuration rather than a failure while drawing or writing.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return true
	}
	return false
}
