package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dilation-core/internal/domain/entities"
)

func newTestEngine() *DilationEngine {
	return NewDilationEngine(NewUnitConverter())
}

func TestDilationEngine_NegativeTime(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     -1,
		Unit:     entities.UnitSeconds,
		Velocity: 100,
	})
	require.ErrorIs(t, err, entities.ErrNegativeTime)
	assert.Nil(t, result)
}

func TestDilationEngine_NegativeVelocity(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     10,
		Unit:     entities.UnitSeconds,
		Velocity: -5,
	})
	require.ErrorIs(t, err, entities.ErrNegativeVelocity)
	assert.Nil(t, result)
}

func TestDilationEngine_TimeCheckedBeforeVelocity(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.Compute(entities.DilationInput{
		Time:     -1,
		Unit:     entities.UnitSeconds,
		Velocity: -1,
	})
	require.ErrorIs(t, err, entities.ErrNegativeTime)
}

func TestDilationEngine_ZeroVelocityIsNoOp(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     10,
		Unit:     entities.UnitSeconds,
		Velocity: 0,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDilationEngine_HalfLightSpeed(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     1,
		Unit:     entities.UnitHours,
		Velocity: SpeedOfLight / 2,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// gamma at 0.5c is 1/sqrt(0.75)
	assert.InDelta(t, 1.1547005383792517, result.DilationFactor, 1e-12)
	assert.InDelta(t, 1.1547005383792517, result.DilatedTime, 1e-12)
	assert.Equal(t, float64(1), result.OriginalTime)
	assert.Equal(t, entities.UnitHours, result.Unit)
	assert.Equal(t, SpeedOfLight/2, result.Velocity)
	assert.Equal(t, float64(50), result.SpeedRatioPercent)
}

func TestDilationEngine_DilationNeverShortensTime(t *testing.T) {
	engine := newTestEngine()

	velocities := []float64{1, 1000, 0.1 * SpeedOfLight, 0.9 * SpeedOfLight, 0.999 * SpeedOfLight}
	for _, velocity := range velocities {
		result, err := engine.Compute(entities.DilationInput{
			Time:     5,
			Unit:     entities.UnitDays,
			Velocity: velocity,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.GreaterOrEqual(t, result.DilationFactor, float64(1), "velocity %v", velocity)
		assert.GreaterOrEqual(t, result.DilatedTime, result.OriginalTime, "velocity %v", velocity)
	}
}

func TestDilationEngine_FactorStrictlyIncreasesWithVelocity(t *testing.T) {
	engine := newTestEngine()

	velocities := []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 0.9999}
	previous := float64(0)
	for _, fraction := range velocities {
		result, err := engine.Compute(entities.DilationInput{
			Time:     1,
			Unit:     entities.UnitSeconds,
			Velocity: fraction * SpeedOfLight,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Greater(t, result.DilationFactor, previous, "fraction %v", fraction)
		previous = result.DilationFactor
	}
}

func TestDilationEngine_ClampKeepsFactorFinite(t *testing.T) {
	engine := newTestEngine()

	velocities := []float64{SpeedOfLight, 2 * SpeedOfLight, math.MaxFloat64}
	for _, velocity := range velocities {
		result, err := engine.Compute(entities.DilationInput{
			Time:     1,
			Unit:     entities.UnitSeconds,
			Velocity: velocity,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.False(t, math.IsInf(result.DilationFactor, 0), "velocity %v", velocity)
		assert.False(t, math.IsNaN(result.DilationFactor), "velocity %v", velocity)
		assert.False(t, math.IsInf(result.DilatedTime, 0), "velocity %v", velocity)
		assert.Less(t, result.SpeedRatioPercent, float64(100), "velocity %v", velocity)
	}
}

func TestDilationEngine_AtLightSpeedMatchesClampBoundary(t *testing.T) {
	engine := newTestEngine()

	atLightSpeed, err := engine.Compute(entities.DilationInput{
		Time:     1,
		Unit:     entities.UnitSeconds,
		Velocity: SpeedOfLight,
	})
	require.NoError(t, err)
	require.NotNil(t, atLightSpeed)

	atBoundary, err := engine.Compute(entities.DilationInput{
		Time:     1,
		Unit:     entities.UnitSeconds,
		Velocity: SpeedOfLight - clampEpsilon,
	})
	require.NoError(t, err)
	require.NotNil(t, atBoundary)

	assert.Equal(t, atBoundary.DilationFactor, atLightSpeed.DilationFactor)
}

func TestDilationEngine_OneHourNearLightSpeed(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     1,
		Unit:     entities.UnitHours,
		Velocity: 299792457.999999,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// The ratio is just under 1, so the factor is huge but finite.
	assert.Greater(t, result.DilationFactor, float64(1e6))
	assert.False(t, math.IsInf(result.DilationFactor, 0))
	assert.Greater(t, result.DilatedTime, float64(1))
	assert.Equal(t, entities.UnitHours, result.Unit)
}

func TestDilationEngine_SpeedRatioPercentRounding(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Compute(entities.DilationInput{
		Time:     1,
		Unit:     entities.UnitSeconds,
		Velocity: 0.123456789 * SpeedOfLight,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 12.345679, result.SpeedRatioPercent)
}

func TestDilationEngine_SpeedRatioPercentRange(t *testing.T) {
	engine := newTestEngine()

	for _, fraction := range []float64{0.000001, 0.25, 0.5, 0.999999, 1, 10} {
		result, err := engine.Compute(entities.DilationInput{
			Time:     1,
			Unit:     entities.UnitSeconds,
			Velocity: fraction * SpeedOfLight,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.GreaterOrEqual(t, result.SpeedRatioPercent, float64(0))
		assert.Less(t, result.SpeedRatioPercent, float64(100))
	}
}
