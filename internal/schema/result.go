package schema

import (
	"fmt"
	"strings"
)

// FieldError is a single failed rule on a named field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result collects the failed rules of one validation run in rule order
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// Valid reports whether no rule failed
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Fields maps each failing field to its message
func (r Result) Fields() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		out[e.Field] = e.Message
	}
	return out
}

// Has reports whether field failed
func (r Result) Has(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result and a *ValidationError otherwise
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

func (r *Result) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// ValidationError carries field level detail through error returns
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
