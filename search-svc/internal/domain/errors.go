package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed search request. It is raised before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

var ErrRestaurantNotFound = errors.New("restaurant not found")
