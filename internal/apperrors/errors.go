package apperrors

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid or missing part of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found in a submission so the
// caller can present a complete correction list, not just the first hit.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError means the commit transaction lost a race (order number or
// customer uniqueness) more times than the bounded retry allows.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
