// Package iau formats sky positions as the fixed-width designation
// strings used in source catalog names: hhmm+ddmm, dddmm+ddmm and
// ddd.d+dd.d.
package iau

import (
	"fmt"
	"math"
)

// Mode selects the designation form for the longitude-like coordinate.
type Mode int

const (
	// ModeHours formats the longitude as two-digit hours plus minutes.
	ModeHours Mode = iota

	// ModeDegrees formats the longitude as three-digit degrees plus
	// minutes.
	ModeDegrees

	// ModeDecimal formats both coordinates in decimal degrees with one
	// decimal place.
	ModeDecimal
)

// ParseMode maps the flag spellings to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "hours", "h":
		return ModeHours, nil
	case "degrees", "d":
		return ModeDegrees, nil
	case "decimal", "g":
		return ModeDecimal, nil
	}
	return 0, fmt.Errorf("unknown designation mode %q: must be hours, degrees or decimal", s)
}

// Designation formats a (longitude-like, latitude-like) pair as a
// fixed-width position designation. The longitude must be
// non-negative; the IAU convention truncates coordinates, never
// rounds. In the hours and degrees modes a zero latitude is an
// ArithmeticFault: its sign is undefined.
func Designation(longitude, latitude float64, mode Mode) (string, error) {
	if mode == ModeDecimal {
		return fmt.Sprintf("%05.1f%+05.1f", longitude, latitude), nil
	}

	unit := int(longitude)
	minute := int(60 * (longitude - float64(unit)))
	var lonStr string
	switch mode {
	case ModeHours:
		lonStr = fmt.Sprintf("%02d%02d", unit, minute)
	case ModeDegrees:
		lonStr = fmt.Sprintf("%03d%02d", unit, minute)
	default:
		return "", fmt.Errorf("unknown designation mode %d", mode)
	}

	if latitude == 0 {
		return "", NewArithmeticFault("latitude sign", "latitude is zero")
	}
	sign := int(latitude / math.Abs(latitude))
	deg := int(math.Abs(latitude))
	minLat := int(60 * (math.Abs(latitude) - float64(deg)))
	return lonStr + fmt.Sprintf("%+03d%02d", sign*deg, minLat), nil
}
