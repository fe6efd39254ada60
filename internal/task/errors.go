package task

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected input value. The document is never
// mutated when a ValidationError is returned.
type ValidationError struct {
	Field   string // which input was rejected
	Message string // human-readable description
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports that no task has the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %d not found", e.ID)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFoundError reports whether err is (or wraps) a NotFoundError.
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
