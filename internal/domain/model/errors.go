package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScoringUnavailable is returned when one or more scoring functions
// cannot be invoked. It is fatal to the current decision, never retried by
// the engine, and must be surfaced distinctly from a denial so callers do
// not confuse a broken service with a rejected application.
var ErrScoringUnavailable = errors.New("scoring unavailable")

// ErrDecisionNotFound is returned when a persisted decision cannot be located.
var ErrDecisionNotFound = errors.New("decision not found")

// FieldError describes a single invalid application field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the field errors found while validating an
// application. All fields are checked; the caller gets the full list in
// one pass.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid application"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid application: " + strings.Join(parts, "; ")
}

// add records a field error.
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Details returns the field errors keyed by field name, in the shape the
// transport layer reports to clients.
func (e *ValidationError) Details() map[string]string {
	details := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		details[f.Field] = f.Message
	}
	return details
}
