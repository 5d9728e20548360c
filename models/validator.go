package models

import (
	"fmt"
	"slices"
	"strings"
)

// FieldError describes a single rejected payload field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a payload or query parameter is malformed
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

// NewValidationError builds a ValidationError without field details
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Validator collects field errors in the order they were found
type Validator struct {
	Errors []FieldError
}

// Valid reports whether no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records a message for key unless key already has one
func (v *Validator) AddError(key, message string) {
	for _, e := range v.Errors {
		if e.Field == key {
			return
		}
	}
	v.Errors = append(v.Errors, FieldError{Field: key, Message: message})
}

// Check adds an error only if ok is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns nil when valid, otherwise a ValidationError with message
func (v *Validator) Err(message string) error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Message: message, Fields: slices.Clone(v.Errors)}
}

// In reports whether value is in list
func In[T comparable](value T, list ...T) bool {
	return slices.Contains(list, value)
}
