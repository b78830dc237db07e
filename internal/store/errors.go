package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an operation addressing an id that does not
	// exist. Callers match it with errors.Is.
	ErrNotFound = errors.New("not found")

	// ErrBulkNoMatch reports a bulk operation in which zero of the
	// requested ids resolved. Partial matches are not an error.
	ErrBulkNoMatch = errors.New("no matching ids")
)

// ValidationError rejects malformed input at the boundary. It never
// escapes the handler layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
