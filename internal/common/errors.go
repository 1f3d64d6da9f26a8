// Package common defines shared constants and sentinel errors used across
// client and server layers of VaccineHub. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorUnauthorized is returned for both an unknown email and a wrong
	// password, so callers cannot tell which one was wrong.
	ErrorUnauthorized = errors.New("invalid email/password combo")

	// Validation errors.
	ErrMissingField   = errors.New("missing field")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEmail = errors.New("duplicate email")
)

// FieldError reports a problem with a single named input field.
// It unwraps to its Kind, so errors.Is(err, ErrMissingField) works.
type FieldError struct {
	Kind  error
	Field string
}

func (e *FieldError) Error() string {
	if errors.Is(e.Kind, ErrMissingField) {
		return fmt.Sprintf("missing %s in request body", e.Field)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// MissingField returns a FieldError of kind ErrMissingField for field.
func MissingField(field string) error {
	return &FieldError{Kind: ErrMissingField, Field: field}
}
