package domain

import (
	"time"

	"github.com/google/uuid"
)

// AmmoProfile is one ammunition load, always tied to a rifle profile owned
// by the same user.
type AmmoProfile struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	RifleID                uuid.UUID
	Name                   string
	Manufacturer           string
	BulletWeight           float64 // grains
	BulletType             string
	BallisticCoefficientG1 *float64
	BallisticCoefficientG7 *float64
	MuzzleVelocity         float64 // feet per second
	PowderType             *string
	PowderWeight           *float64 // grains
	LotNumber              *string
	Notes                  *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// MuzzleEnergyFtLb returns the load's kinetic energy at the muzzle.
func (a *AmmoProfile) MuzzleEnergyFtLb() float64 {
	return MuzzleEnergy(a.BulletWeight, a.MuzzleVelocity)
}

// AmmoStats are per-load aggregates over the owner's DOPE logs.
// Pointer fields are nil when no matching rows exist.
type AmmoStats struct {
	DopeCount        int
	MinDistanceYards *float64
	MaxDistanceYards *float64
	AvgHitPercentage *float64
	AvgGroupSize     *float64
}
