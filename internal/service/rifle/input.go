package rifle

import (
	"regexp"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

var twistRatePattern = regexp.MustCompile(`^1:\d+$`)

// CreateInput holds the parameters for creating a rifle profile.
type CreateInput struct {
	Name              string
	Caliber           string
	BarrelLength      float64
	TwistRate         string
	ZeroDistance      float64
	OpticManufacturer *string
	OpticModel        *string
	ReticleType       *string
	ClickUnit         domain.ClickUnit
	ClickValue        float64
	ScopeHeight       float64
	Notes             *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Caliber == "" {
		errs = append(errs, domain.FieldError{Field: "caliber", Message: "required"})
	}
	if i.BarrelLength <= 0 || i.BarrelLength > 50 {
		errs = append(errs, domain.FieldError{Field: "barrel_length", Message: "must be in (0,50] inches"})
	}
	if !twistRatePattern.MatchString(i.TwistRate) {
		errs = append(errs, domain.FieldError{Field: "twist_rate", Message: `must match "1:<integer>"`})
	}
	if i.ZeroDistance <= 0 || i.ZeroDistance > 1000 {
		errs = append(errs, domain.FieldError{Field: "zero_distance", Message: "must be in (0,1000] yards"})
	}
	if !i.ClickUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "click_unit", Message: "must be MIL or MOA"})
	}
	if i.ClickValue <= 0 || i.ClickValue > 1 {
		errs = append(errs, domain.FieldError{Field: "click_value", Message: "must be in (0,1]"})
	}
	if i.ScopeHeight <= 0 || i.ScopeHeight > 10 {
		errs = append(errs, domain.FieldError{Field: "scope_height", Message: "must be in (0,10] inches"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial fields for updating a rifle profile.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name              *string
	Caliber           *string
	BarrelLength      *float64
	TwistRate         *string
	ZeroDistance      *float64
	OpticManufacturer *string
	OpticModel        *string
	ReticleType       *string
	ClickUnit         *domain.ClickUnit
	ClickValue        *float64
	ScopeHeight       *float64
	Notes             *string
}

// Validate checks all supplied fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil && *i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Caliber != nil && *i.Caliber == "" {
		errs = append(errs, domain.FieldError{Field: "caliber", Message: "must not be empty"})
	}
	if i.BarrelLength != nil && (*i.BarrelLength <= 0 || *i.BarrelLength > 50) {
		errs = append(errs, domain.FieldError{Field: "barrel_length", Message: "must be in (0,50] inches"})
	}
	if i.TwistRate != nil && !twistRatePattern.MatchString(*i.TwistRate) {
		errs = append(errs, domain.FieldError{Field: "twist_rate", Message: `must match "1:<integer>"`})
	}
	if i.ZeroDistance != nil && (*i.ZeroDistance <= 0 || *i.ZeroDistance > 1000) {
		errs = append(errs, domain.FieldError{Field: "zero_distance", Message: "must be in (0,1000] yards"})
	}
	if i.ClickUnit != nil && !i.ClickUnit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "click_unit", Message: "must be MIL or MOA"})
	}
	if i.ClickValue != nil && (*i.ClickValue <= 0 || *i.ClickValue > 1) {
		errs = append(errs, domain.FieldError{Field: "click_value", Message: "must be in (0,1]"})
	}
	if i.ScopeHeight != nil && (*i.ScopeHeight <= 0 || *i.ScopeHeight > 10) {
		errs = append(errs, domain.FieldError{Field: "scope_height", Message: "must be in (0,10] inches"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing rifle profiles.
type ListInput struct {
	Caliber   *string
	Search    *string
	SortBy    string
	SortOrder domain.SortOrder
	Page      int
	Limit     int
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
