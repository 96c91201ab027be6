package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ReferenceError reports a foreign key that points to a record that does not
// exist or belongs to another user. Callers treat it like a validation error;
// the failing field is named so the client can correct it.
type ReferenceError struct {
	Field string
	ID    uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: no such record %s", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }

// NewReferenceError creates a ReferenceError for a single foreign key field.
func NewReferenceError(field string, id uuid.UUID) *ReferenceError {
	return &ReferenceError{Field: field, ID: id}
}

// ConflictError reports a delete blocked by dependent records.
// References carries the number of blocking records.
type ConflictError struct {
	Message    string
	References int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (%d referencing records)", e.Message, e.References)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
