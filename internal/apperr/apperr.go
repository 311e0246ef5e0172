// Package apperr defines the sentinel errors shared by all layers.
// Callers match them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing user input. Reported to the
	// caller as a message, never fatal.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a referenced id or username that is absent at
	// edit/delete time.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks an unreadable or unwritable backing file. The
	// operation is aborted and in-memory state discarded.
	ErrPersistence = errors.New("persistence error")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
