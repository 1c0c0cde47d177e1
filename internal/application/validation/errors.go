// Package validation turns raw form values into scorer inputs, either
// leniently (malformed numbers become zero) or strictly.
package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by strict parsing for negative, non-finite
	// or non-numeric values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTimeFormat is returned by strict parsing when a time of day
	// is not HH:MM.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// InvalidInputError names the offending field.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidTimeFormatError carries the time string that failed to parse.
type InvalidTimeFormatError struct {
	Value string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time of day %q: expected HH:MM", e.Value)
}

func (e *InvalidTimeFormatError) Unwrap() error {
	return ErrInvalidTimeFormat
}
