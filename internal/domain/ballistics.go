package domain

import "math"

// metersToYards is the fixed conversion factor used for distance
// normalization. Round-tripping through both conversions is only
// approximately idempotent.
const metersToYards = 1.09361

// YardsFromDistance normalizes a distance to yards.
// Yards pass through unchanged; meters are multiplied by 1.09361.
func YardsFromDistance(distance float64, unit DistanceUnit) float64 {
	if unit == DistanceUnitMeters {
		return distance * metersToYards
	}
	return distance
}

// MetersFromYards converts a normalized yard distance back to meters.
func MetersFromYards(yards float64) float64 {
	return yards / metersToYards
}

// CalcDensityAltitude derives density altitude (feet) from temperature (°F),
// station pressure (inHg) and altitude (feet):
//
//	pressureAltitude = altitude + 1000 × (29.92 − pressure)
//	standardTemp     = 59 − 0.00356 × altitude
//	densityAltitude  = pressureAltitude + 120 × (temperature − standardTemp)
//
// The result is rounded to the nearest integer.
func CalcDensityAltitude(tempF, pressureInHg, altitudeFt float64) int {
	pressureAltitude := altitudeFt + 1000*(29.92-pressureInHg)
	standardTemp := 59 - 0.00356*altitudeFt
	da := pressureAltitude + 120*(tempF-standardTemp)
	return int(math.Round(da))
}

// CalcHitPercentage derives the hit percentage from hit and shot counts.
// Returns nil when either count is absent or shotCount is zero. The value is
// unrounded; rounding is a presentation concern.
func CalcHitPercentage(hitCount, shotCount *int) *float64 {
	if hitCount == nil || shotCount == nil || *shotCount == 0 {
		return nil
	}
	pct := float64(*hitCount) / float64(*shotCount) * 100
	return &pct
}

// compassRose lists the 16 compass points clockwise from north.
var compassRose = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindBearing maps a wind direction in degrees onto the 16-point compass rose.
func WindBearing(directionDeg float64) string {
	bucket := int(math.Round(directionDeg/22.5)) % 16
	if bucket < 0 {
		bucket += 16
	}
	return compassRose[bucket]
}

// MuzzleEnergy computes kinetic energy in foot-pounds from bullet weight in
// grains and muzzle velocity in feet per second.
func MuzzleEnergy(weightGrains, velocityFPS float64) float64 {
	return weightGrains * velocityFPS * velocityFPS / 450240
}
