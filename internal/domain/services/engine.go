package services

import (
	"math"

	"github.com/ersonp/dilation-core/internal/domain/entities"
)

// SpeedOfLight is c in meters per second, exact by definition of the meter.
const SpeedOfLight = 299792458.0

// clampEpsilon keeps the clamped velocity strictly below c, so the Lorentz
// factor is finite for every input the engine accepts.
const clampEpsilon = 1e-6

// speedRatioDecimals is the rounding precision of SpeedRatioPercent.
const speedRatioDecimals = 6

// DilationEngine computes relativistic time dilation. It holds no state
// between calls and is safe for concurrent use.
type DilationEngine struct {
	converter *UnitConverter
}

// NewDilationEngine creates a new dilation engine.
func NewDilationEngine(converter *UnitConverter) *DilationEngine {
	return &DilationEngine{converter: converter}
}

// Compute validates the input and returns the dilation result. Velocities
// at or above c are clamped to just below c rather than rejected. A zero
// velocity returns (nil, nil): there is nothing to show, but nothing went
// wrong either.
func (e *DilationEngine) Compute(input entities.DilationInput) (*entities.DilationResult, error) {
	if input.Time < 0 {
		return nil, entities.ErrNegativeTime
	}
	if input.Velocity < 0 {
		return nil, entities.ErrNegativeVelocity
	}

	seconds := e.converter.ToSeconds(input.Time, input.Unit)

	clamped := math.Min(input.Velocity, SpeedOfLight-clampEpsilon)
	ratio := clamped / SpeedOfLight
	if ratio <= 0 {
		return nil, nil
	}

	gamma := 1 / math.Sqrt(1-ratio*ratio)
	dilated := e.converter.FromSeconds(seconds*gamma, input.Unit)

	// Near the clamp boundary, rounding the percent to six decimals would
	// land on exactly 100; the ratio itself is strictly below 1, so the
	// percent must stay strictly below 100 too.
	percent := roundTo(ratio*100, speedRatioDecimals)
	if percent >= 100 {
		percent = 100 - math.Pow(10, -speedRatioDecimals)
	}

	return &entities.DilationResult{
		DilationFactor:    gamma,
		DilatedTime:       dilated,
		OriginalTime:      input.Time,
		Unit:              input.Unit,
		Velocity:          input.Velocity,
		SpeedRatioPercent: percent,
	}, nil
}

// roundTo rounds n to the given number of decimal places.
func roundTo(n float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(n*scale) / scale
}
