package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinels the HTTP layer maps to status codes. Wrap them with %w.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError is a rejected request keyed by field. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError rejects a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields alphabetically so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation messages shared by the rule sets.
const (
	MsgRequired     = "must be completed"
	MsgInvalidEmail = "is not a valid email address"
	MsgAccepted     = "must be accepted"
)

// MsgTooLong returns the message for a value longer than limit characters.
func MsgTooLong(limit int) string {
	return fmt.Sprintf("is too long (maximum is %d characters)", limit)
}
