// Package noterr provides the error kind surfaced by the persistence layer.
package noterr

import (
	"errors"
	"fmt"
)

// Code classifies a persistence error.
type Code string

const (
	// CodeStore covers driver-level failures: the store cannot be opened,
	// a statement fails, or the connection is lost.
	CodeStore Code = "STORE_ERROR"
	// CodeNotFound is returned when a requested note id has no row.
	CodeNotFound Code = "NOTE_NOT_FOUND"
	// CodeInvalid is returned for operations misapplied to a note variant.
	CodeInvalid Code = "INVALID_INPUT"
	// CodeMigration is returned when the schema cannot be brought up to date.
	CodeMigration Code = "MIGRATION_FAILED"
)

// PersistenceError carries a code, a human-readable message and an
// optional underlying cause.
type PersistenceError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// New creates a PersistenceError without a cause.
func New(code Code, message string) *PersistenceError {
	return &PersistenceError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a PersistenceError with a formatted message.
func Newf(code Code, format string, args ...any) *PersistenceError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a code and message.
func Wrap(code Code, message string, err error) *PersistenceError {
	return &PersistenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
