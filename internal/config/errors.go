package config

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is wrapped by every ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError describes one invalid setting.
type ValidationError struct {
	Path    string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
