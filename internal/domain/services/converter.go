// Package services contains the calculation logic of the dilation core.
package services

import "github.com/ersonp/dilation-core/internal/domain/entities"

// UnitConverter converts durations between a value/unit pair and seconds,
// the canonical unit for all dilation arithmetic.
type UnitConverter struct{}

// NewUnitConverter creates a new unit converter.
func NewUnitConverter() *UnitConverter {
	return &UnitConverter{}
}

// ToSeconds converts a value expressed in the given unit to seconds.
// No validation happens here; negative or non-finite values pass through.
func (c *UnitConverter) ToSeconds(value float64, unit entities.TimeUnit) float64 {
	return value * unit.Seconds()
}

// FromSeconds converts seconds back to the given unit.
func (c *UnitConverter) FromSeconds(seconds float64, unit entities.TimeUnit) float64 {
	return seconds / unit.Seconds()
}
