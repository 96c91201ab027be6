package dopelog

import (
	"time"

	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// CreateInput holds the parameters for logging a DOPE entry. distance_yards
// and hit_percentage are never accepted from the caller; they are derived.
type CreateInput struct {
	RifleID             uuid.UUID
	AmmoID              uuid.UUID
	EnvironmentID       uuid.UUID
	Distance            float64
	DistanceUnit        domain.DistanceUnit
	ElevationCorrection float64
	WindageCorrection   float64
	CorrectionUnit      domain.ClickUnit
	TargetType          domain.TargetType
	GroupSize           *float64
	HitCount            *int
	ShotCount           *int
	Notes               *string
	ShotAt              *time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.RifleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "rifle_id", Message: "required"})
	}
	if i.AmmoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "ammo_id", Message: "required"})
	}
	if i.EnvironmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "environment_id", Message: "required"})
	}
	if i.Distance <= 0 || i.Distance > 3000 {
		errs = append(errs, domain.FieldError{Field: "distance", Message: "must be in (0,3000]"})
	}
	if !i.DistanceUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "distance_unit", Message: "must be yards or meters"})
	}
	if !i.CorrectionUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "correction_unit", Message: "must be MIL or MOA"})
	}
	if !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be steel, paper, vital_zone or other"})
	}
	if i.GroupSize != nil && *i.GroupSize < 0 {
		errs = append(errs, domain.FieldError{Field: "group_size", Message: "must be non-negative"})
	}
	if i.HitCount != nil && *i.HitCount < 0 {
		errs = append(errs, domain.FieldError{Field: "hit_count", Message: "must be non-negative"})
	}
	if i.ShotCount != nil && *i.ShotCount < 0 {
		errs = append(errs, domain.FieldError{Field: "shot_count", Message: "must be non-negative"})
	}
	if i.HitCount != nil && i.ShotCount != nil && *i.HitCount > *i.ShotCount {
		errs = append(errs, domain.FieldError{Field: "hit_count", Message: "must not exceed shot_count"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial fields for updating a DOPE entry. Nil fields
// are left unchanged; changed foreign keys are re-checked for ownership and
// the cross-field count invariant is re-validated after the merge.
type UpdateInput struct {
	RifleID             *uuid.UUID
	AmmoID              *uuid.UUID
	EnvironmentID       *uuid.UUID
	Distance            *float64
	DistanceUnit        *domain.DistanceUnit
	ElevationCorrection *float64
	WindageCorrection   *float64
	CorrectionUnit      *domain.ClickUnit
	TargetType          *domain.TargetType
	GroupSize           *float64
	HitCount            *int
	ShotCount           *int
	Notes               *string
	ShotAt              *time.Time
}

// Validate checks all supplied fields and collects all errors. The
// hit_count ≤ shot_count invariant is checked against the merged record by
// the caller, since either side may be stored rather than supplied.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.RifleID != nil && *i.RifleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "rifle_id", Message: "must not be empty"})
	}
	if i.AmmoID != nil && *i.AmmoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "ammo_id", Message: "must not be empty"})
	}
	if i.EnvironmentID != nil && *i.EnvironmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "environment_id", Message: "must not be empty"})
	}
	if i.Distance != nil && (*i.Distance <= 0 || *i.Distance > 3000) {
		errs = append(errs, domain.FieldError{Field: "distance", Message: "must be in (0,3000]"})
	}
	if i.DistanceUnit != nil && !i.DistanceUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "distance_unit", Message: "must be yards or meters"})
	}
	if i.CorrectionUnit != nil && !i.CorrectionUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "correction_unit", Message: "must be MIL or MOA"})
	}
	if i.TargetType != nil && !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be steel, paper, vital_zone or other"})
	}
	if i.GroupSize != nil && *i.GroupSize < 0 {
		errs = append(errs, domain.FieldError{Field: "group_size", Message: "must be non-negative"})
	}
	if i.HitCount != nil && *i.HitCount < 0 {
		errs = append(errs, domain.FieldError{Field: "hit_count", Message: "must be non-negative"})
	}
	if i.ShotCount != nil && *i.ShotCount < 0 {
		errs = append(errs, domain.FieldError{Field: "shot_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing DOPE entries. Distance bounds
// apply to the normalized distance_yards value.
type ListInput struct {
	RifleID     *uuid.UUID
	AmmoID      *uuid.UUID
	DistanceMin *float64
	DistanceMax *float64
	TargetType  *domain.TargetType
	Sort        domain.DopeLogSort
	Page        int
	Limit       int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.DistanceMin != nil && i.DistanceMax != nil && *i.DistanceMin > *i.DistanceMax {
		errs = append(errs, domain.FieldError{Field: "distance_min", Message: "must not exceed distance_max"})
	}
	if i.TargetType != nil && !i.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Message: "must be steel, paper, vital_zone or other"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be newest, distance_asc, distance_desc or hit_percentage"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
