// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"strings"
)

// TimeUnit identifies a duration unit supported by the calculator.
type TimeUnit string

// Supported time units.
const (
	UnitSeconds TimeUnit = "seconds"
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
	UnitDays    TimeUnit = "days"
	UnitYears   TimeUnit = "years"
)

// AllTimeUnits lists the supported units in ascending order of magnitude.
var AllTimeUnits = []TimeUnit{UnitSeconds, UnitMinutes, UnitHours, UnitDays, UnitYears}

// secondsPerUnit maps each unit to its length in seconds.
// A year is a flat 365 days, not a Julian year.
var secondsPerUnit = map[TimeUnit]float64{
	UnitSeconds: 1,
	UnitMinutes: 60,
	UnitHours:   3600,
	UnitDays:    86400,
	UnitYears:   31536000,
}

// Seconds returns the length of one of this unit in seconds.
// Unknown units report 1 rather than panicking; ParseTimeUnit is the gate
// for external input.
func (u TimeUnit) Seconds() float64 {
	if factor, ok := secondsPerUnit[u]; ok {
		return factor
	}
	return 1
}

// IsValid reports whether the unit is one of the supported units.
func (u TimeUnit) IsValid() bool {
	_, ok := secondsPerUnit[u]
	return ok
}

// ParseTimeUnit converts user input into a TimeUnit. Input is trimmed and
// lowercased before matching.
func ParseTimeUnit(s string) (TimeUnit, error) {
	unit := TimeUnit(strings.ToLower(strings.TrimSpace(s)))
	if !unit.IsValid() {
		return "", fmt.Errorf("unknown time unit %q (valid: seconds, minutes, hours, days, years)", s)
	}
	return unit, nil
}
