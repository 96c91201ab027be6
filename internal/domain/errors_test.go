package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("twist_rate", "must match 1:<n>")

	if got := err.Error(); got != "validation: twist_rate: must match 1:<n>" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "barrel_length", Message: "must be in (0,50]"},
		{Field: "click_value", Message: "must be in (0,1]"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestReferenceError(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	err := NewReferenceError("rifle_id", id)

	if !errors.Is(err, ErrInvalidReference) {
		t.Fatal("errors.Is(err, ErrInvalidReference) = false")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatal("reference errors must not unwrap to ErrValidation")
	}

	var re *ReferenceError
	if !errors.As(err, &re) {
		t.Fatal("errors.As(*ReferenceError) = false")
	}
	if re.Field != "rifle_id" || re.ID != id {
		t.Fatalf("unexpected fields: %+v", re)
	}
}

func TestConflictError_ReportsCount(t *testing.T) {
	t.Parallel()

	err := &ConflictError{Message: "environment snapshot is referenced by dope logs", References: 2}

	if !errors.Is(err, ErrConflict) {
		t.Fatal("errors.Is(err, ErrConflict) = false")
	}
	if got := err.Error(); got != "environment snapshot is referenced by dope logs (2 referencing records)" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrInvalidReference, ErrConflict, ErrUnauthorized,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
