package service

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when an operation needs a caller and none is present.
var ErrUnauthorized = errors.New("unauthorized")

// ValidationError reports a rejected input field. Code is the stable
// machine-readable value handlers put in the error body.
type ValidationError struct {
	Field string
	Code  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Code)
}

func invalid(field, code string) error {
	return &ValidationError{Field: field, Code: code}
}
