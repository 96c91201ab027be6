package ammo

import (
	"github.com/google/uuid"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// CreateInput holds the parameters for creating an ammo profile.
type CreateInput struct {
	RifleID                uuid.UUID
	Name                   string
	Manufacturer           string
	BulletWeight           float64
	BulletType             string
	BallisticCoefficientG1 *float64
	BallisticCoefficientG7 *float64
	MuzzleVelocity         float64
	PowderType             *string
	PowderWeight           *float64
	LotNumber              *string
	Notes                  *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.RifleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "rifle_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Manufacturer == "" {
		errs = append(errs, domain.FieldError{Field: "manufacturer", Message: "required"})
	}
	if i.BulletWeight <= 0 || i.BulletWeight > 1000 {
		errs = append(errs, domain.FieldError{Field: "bullet_weight", Message: "must be in (0,1000] grains"})
	}
	if i.BulletType == "" {
		errs = append(errs, domain.FieldError{Field: "bullet_type", Message: "required"})
	}
	if i.BallisticCoefficientG1 != nil && (*i.BallisticCoefficientG1 < 0 || *i.BallisticCoefficientG1 > 1) {
		errs = append(errs, domain.FieldError{Field: "ballistic_coefficient_g1", Message: "must be in [0,1]"})
	}
	if i.BallisticCoefficientG7 != nil && (*i.BallisticCoefficientG7 < 0 || *i.BallisticCoefficientG7 > 1) {
		errs = append(errs, domain.FieldError{Field: "ballistic_coefficient_g7", Message: "must be in [0,1]"})
	}
	if i.MuzzleVelocity <= 0 || i.MuzzleVelocity > 5000 {
		errs = append(errs, domain.FieldError{Field: "muzzle_velocity", Message: "must be in (0,5000] fps"})
	}
	if i.PowderWeight != nil && *i.PowderWeight <= 0 {
		errs = append(errs, domain.FieldError{Field: "powder_weight", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial fields for updating an ammo profile.
// Nil fields are left unchanged. A changed RifleID is re-checked for
// same-user ownership.
type UpdateInput struct {
	RifleID                *uuid.UUID
	Name                   *string
	Manufacturer           *string
	BulletWeight           *float64
	BulletType             *string
	BallisticCoefficientG1 *float64
	BallisticCoefficientG7 *float64
	MuzzleVelocity         *float64
	PowderType             *string
	PowderWeight           *float64
	LotNumber              *string
	Notes                  *string
}

// Validate checks all supplied fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.RifleID != nil && *i.RifleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "rifle_id", Message: "must not be empty"})
	}
	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Manufacturer != nil && *i.Manufacturer == "" {
		errs = append(errs, domain.FieldError{Field: "manufacturer", Message: "must not be empty"})
	}
	if i.BulletWeight != nil && (*i.BulletWeight <= 0 || *i.BulletWeight > 1000) {
		errs = append(errs, domain.FieldError{Field: "bullet_weight", Message: "must be in (0,1000] grains"})
	}
	if i.BulletType != nil && *i.BulletType == "" {
		errs = append(errs, domain.FieldError{Field: "bullet_type", Message: "must not be empty"})
	}
	if i.BallisticCoefficientG1 != nil && (*i.BallisticCoefficientG1 < 0 || *i.BallisticCoefficientG1 > 1) {
		errs = append(errs, domain.FieldError{Field: "ballistic_coefficient_g1", Message: "must be in [0,1]"})
	}
	if i.BallisticCoefficientG7 != nil && (*i.BallisticCoefficientG7 < 0 || *i.BallisticCoefficientG7 > 1) {
		errs = append(errs, domain.FieldError{Field: "ballistic_coefficient_g7", Message: "must be in [0,1]"})
	}
	if i.MuzzleVelocity != nil && (*i.MuzzleVelocity <= 0 || *i.MuzzleVelocity > 5000) {
		errs = append(errs, domain.FieldError{Field: "muzzle_velocity", Message: "must be in (0,5000] fps"})
	}
	if i.PowderWeight != nil && *i.PowderWeight <= 0 {
		errs = append(errs, domain.FieldError{Field: "powder_weight", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing ammo profiles.
type ListInput struct {
	RifleID      *uuid.UUID
	Manufacturer *string
	Search       *string
	SortBy       string
	SortOrder    domain.SortOrder
	Page         int
	Limit        int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	switch i.SortBy {
	case "", "name", "created_at":
	default:
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be name or created_at"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be ASC or DESC"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
