package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnvironmentSnapshot is a point-in-time weather and location reading.
// DensityAltitude is derived from temperature, pressure and altitude at
// write time unless the caller supplied an explicit override at creation.
// A snapshot cannot be deleted while any DOPE log still references it.
type EnvironmentSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Temperature     float64 // °F
	Humidity        float64 // percent
	Pressure        float64 // inHg
	Altitude        float64 // feet
	DensityAltitude int     // feet
	WindSpeed       float64 // mph
	WindDirection   float64 // degrees, [0,360)
	Latitude        *float64
	Longitude       *float64
	TakenAt         time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WindBearingLabel returns the snapshot's wind direction on the 16-point
// compass rose.
func (e *EnvironmentSnapshot) WindBearingLabel() string {
	return WindBearing(e.WindDirection)
}

// EnvironmentAverages aggregates snapshots over a date range.
// Count is 0 and all pointers are nil when no snapshots match.
type EnvironmentAverages struct {
	Count              int
	AvgTemperature     *float64
	MinTemperature     *float64
	MaxTemperature     *float64
	AvgHumidity        *float64
	AvgPressure        *float64
	AvgAltitude        *float64
	AvgDensityAltitude *float64
	AvgWindSpeed       *float64
}
