package domain

// ClickUnit is the angular unit of a scope adjustment or a logged correction.
type ClickUnit string

const (
	ClickUnitMIL ClickUnit = "MIL"
	ClickUnitMOA ClickUnit = "MOA"
)

func (u ClickUnit) String() string { return string(u) }

func (u ClickUnit) IsValid() bool {
	switch u {
	case ClickUnitMIL, ClickUnitMOA:
		return true
	}
	return false
}

// DistanceUnit is the unit a shot distance was entered in.
type DistanceUnit string

const (
	DistanceUnitYards  DistanceUnit = "yards"
	DistanceUnitMeters DistanceUnit = "meters"
)

func (u DistanceUnit) String() string { return string(u) }

func (u DistanceUnit) IsValid() bool {
	switch u {
	case DistanceUnitYards, DistanceUnitMeters:
		return true
	}
	return false
}

// TargetType classifies what was being shot at.
type TargetType string

const (
	TargetTypeSteel     TargetType = "steel"
	TargetTypePaper     TargetType = "paper"
	TargetTypeVitalZone TargetType = "vital_zone"
	TargetTypeOther     TargetType = "other"
)

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeSteel, TargetTypePaper, TargetTypeVitalZone, TargetTypeOther:
		return true
	}
	return false
}

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
