package domain

import (
	"time"

	"github.com/google/uuid"
)

// RifleProfile is one physical rifle and optic configuration.
// Every profile belongs to exactly one user; dependent ammo profiles and
// DOPE logs are hard-deleted along with it.
type RifleProfile struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Caliber           string
	BarrelLength      float64 // inches
	TwistRate         string  // "1:<n>"
	ZeroDistance      float64 // yards
	OpticManufacturer *string
	OpticModel        *string
	ReticleType       *string
	ClickUnit         ClickUnit
	ClickValue        float64
	ScopeHeight       float64 // inches over bore
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RifleStats are per-rifle aggregates over the owner's ammo profiles and
// DOPE logs. Pointer fields are nil when no matching rows exist.
type RifleStats struct {
	AmmoCount        int
	DopeCount        int
	MinDistanceYards *float64
	MaxDistanceYards *float64
	AvgHitPercentage *float64
}
