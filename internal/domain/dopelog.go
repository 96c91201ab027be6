package domain

import (
	"time"

	"github.com/google/uuid"
)

// DopeLog is one logged correction record tying a rifle, a load and an
// environment snapshot together. DistanceYards and HitPercentage are derived
// at write time and never independently settable.
type DopeLog struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	RifleID             uuid.UUID
	AmmoID              uuid.UUID
	EnvironmentID       uuid.UUID
	Distance            float64
	DistanceUnit        DistanceUnit
	DistanceYards       float64 // normalized, derived
	ElevationCorrection float64
	WindageCorrection   float64
	CorrectionUnit      ClickUnit
	TargetType          TargetType
	GroupSize           *float64 // inches
	HitCount            *int
	ShotCount           *int
	HitPercentage       *float64 // derived
	Notes               *string
	ShotAt              time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Derive recomputes DistanceYards and HitPercentage from their source fields.
func (d *DopeLog) Derive() {
	d.DistanceYards = YardsFromDistance(d.Distance, d.DistanceUnit)
	d.HitPercentage = CalcHitPercentage(d.HitCount, d.ShotCount)
}

// DopeCard is the distance-ordered correction table for one rifle/ammo pair.
type DopeCard struct {
	Rifle       RifleProfile
	Ammo        AmmoProfile
	Entries     []DopeCardEntry
	GeneratedAt time.Time
}

// DopeCardEntry is a single projected row of a DOPE card.
type DopeCardEntry struct {
	Distance            float64
	DistanceUnit        DistanceUnit
	DistanceYards       float64
	ElevationCorrection float64
	WindageCorrection   float64
	CorrectionUnit      ClickUnit
	HitPercentage       *float64
	GroupSize           *float64
}
