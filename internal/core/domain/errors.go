package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized means the actor's role or ownership failed the scope
	// check for the requested operation. It renders as a generic denial.
	ErrUnauthorized = errors.New("access denied")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound      = errors.New("user not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrPriceNotFound     = errors.New("price not found")
	ErrWorkEntryNotFound = errors.New("work entry not found")

	ErrUserExists = errors.New("user already exists")

	// ErrDuplicateCategory signals a second price for the same
	// (owner, category) pair.
	ErrDuplicateCategory = errors.New("category already priced for this owner")

	// ErrTemplateMissing means the invoice template artifact is absent.
	// Fatal for the request, never retried.
	ErrTemplateMissing = errors.New("invoice template missing")
)

// ValidationError carries field-level detail for malformed input. It is
// recoverable locally and surfaced to the caller as-is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
