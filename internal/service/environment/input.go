package environment

import (
	"time"

	"github.com/leadwind/dopebook-backend/internal/domain"
)

// CreateInput holds the parameters for recording an environment snapshot.
// DensityAltitude, when supplied, overrides the computed value; this is the
// only point in the lifecycle where an override is accepted.
type CreateInput struct {
	Temperature     float64
	Humidity        float64
	Pressure        float64
	Altitude        float64
	DensityAltitude *int
	WindSpeed       float64
	WindDirection   float64
	Latitude        *float64
	Longitude       *float64
	TakenAt         *time.Time
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Temperature < -50 || i.Temperature > 150 {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be in [-50,150] °F"})
	}
	if i.Humidity < 0 || i.Humidity > 100 {
		errs = append(errs, domain.FieldError{Field: "humidity", Message: "must be in [0,100] percent"})
	}
	if i.Pressure < 20 || i.Pressure > 35 {
		errs = append(errs, domain.FieldError{Field: "pressure", Message: "must be in [20,35] inHg"})
	}
	if i.Altitude < -1000 || i.Altitude > 30000 {
		errs = append(errs, domain.FieldError{Field: "altitude", Message: "must be in [-1000,30000] feet"})
	}
	if i.WindSpeed < 0 || i.WindSpeed > 100 {
		errs = append(errs, domain.FieldError{Field: "wind_speed", Message: "must be in [0,100] mph"})
	}
	if i.WindDirection < 0 || i.WindDirection >= 360 {
		errs = append(errs, domain.FieldError{Field: "wind_direction", Message: "must be in [0,360) degrees"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be in [-90,90]"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be in [-180,180]"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the partial fields for updating a snapshot. Nil fields
// are left unchanged. density_altitude is recomputed from the merged values;
// the creation-time override does not survive an update of its inputs.
type UpdateInput struct {
	Temperature   *float64
	Humidity      *float64
	Pressure      *float64
	Altitude      *float64
	WindSpeed     *float64
	WindDirection *float64
	Latitude      *float64
	Longitude     *float64
	TakenAt       *time.Time
}

// Validate checks all supplied fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Temperature != nil && (*i.Temperature < -50 || *i.Temperature > 150) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "must be in [-50,150] °F"})
	}
	if i.Humidity != nil && (*i.Humidity < 0 || *i.Humidity > 100) {
		errs = append(errs, domain.FieldError{Field: "humidity", Message: "must be in [0,100] percent"})
	}
	if i.Pressure != nil && (*i.Pressure < 20 || *i.Pressure > 35) {
		errs = append(errs, domain.FieldError{Field: "pressure", Message: "must be in [20,35] inHg"})
	}
	if i.Altitude != nil && (*i.Altitude < -1000 || *i.Altitude > 30000) {
		errs = append(errs, domain.FieldError{Field: "altitude", Message: "must be in [-1000,30000] feet"})
	}
	if i.WindSpeed != nil && (*i.WindSpeed < 0 || *i.WindSpeed > 100) {
		errs = append(errs, domain.FieldError{Field: "wind_speed", Message: "must be in [0,100] mph"})
	}
	if i.WindDirection != nil && (*i.WindDirection < 0 || *i.WindDirection >= 360) {
		errs = append(errs, domain.FieldError{Field: "wind_direction", Message: "must be in [0,360) degrees"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be in [-90,90]"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be in [-180,180]"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing snapshots.
type ListInput struct {
	TemperatureMin *float64
	TemperatureMax *float64
	TakenFrom      *time.Time
	TakenTo        *time.Time
	SortOrder      domain.SortOrder
	Page           int
	Limit          int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.TemperatureMin != nil && i.TemperatureMax != nil && *i.TemperatureMin > *i.TemperatureMax {
		errs = append(errs, domain.FieldError{Field: "temperature_min", Message: "must not exceed temperature_max"})
	}
	if i.TakenFrom != nil && i.TakenTo != nil && i.TakenFrom.After(*i.TakenTo) {
		errs = append(errs, domain.FieldError{Field: "taken_from", Message: "must not be after taken_to"})
	}
	if i.SortOrder != "" && !i.SortOrder.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must be ASC or DESC"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AveragesInput holds the date range for snapshot aggregation. Both bounds
// are required and from must not be after to.
type AveragesInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i *AveragesInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && i.From.After(i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
