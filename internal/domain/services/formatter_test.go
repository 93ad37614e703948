package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberFormatter_PlainDecimals(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "integer without fraction",
			input:    123,
			expected: "123",
		},
		{
			name:     "zero",
			input:    0,
			expected: "0",
		},
		{
			name:     "grouping separators",
			input:    1234.5,
			expected: "1,234.5",
		},
		{
			name:     "large grouped integer",
			input:    1000000,
			expected: "1,000,000",
		},
		{
			name:     "fraction without trailing zeros",
			input:    0.25,
			expected: "0.25",
		},
		{
			name:     "negative value",
			input:    -42.5,
			expected: "-42.5",
		},
	}

	formatter := NewNumberFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.Format(tt.input))
		})
	}
}

func TestNumberFormatter_Scientific(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "power of ten",
			input:    1e60,
			expected: "1.0000 × 10^60",
		},
		{
			name:     "negative power of ten",
			input:    -1e60,
			expected: "-1.0000 × 10^60",
		},
		{
			name:     "mantissa preserved",
			input:    2.5e55,
			expected: "2.5000 × 10^55",
		},
		{
			name:     "just above the threshold",
			input:    2e50,
			expected: "2.0000 × 10^50",
		},
	}

	formatter := NewNumberFormatter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatter.Format(tt.input))
		})
	}
}

func TestNumberFormatter_ThresholdIsExclusive(t *testing.T) {
	formatter := NewNumberFormatter()

	// 10^50 itself stays in plain notation; only larger magnitudes switch.
	result := formatter.Format(1e50)
	assert.NotContains(t, result, "10^")
	assert.NotEmpty(t, result)
}

func TestNumberFormatter_NonFinite(t *testing.T) {
	formatter := NewNumberFormatter()

	assert.Equal(t, UnrepresentableMagnitude, formatter.Format(math.Inf(1)))
	assert.Equal(t, UnrepresentableMagnitude, formatter.Format(math.Inf(-1)))
	assert.Equal(t, UnrepresentableMagnitude, formatter.Format(math.NaN()))
}

func TestNumberFormatter_NeverLeaksRawNonFiniteText(t *testing.T) {
	formatter := NewNumberFormatter()

	for _, n := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		result := formatter.Format(n)
		assert.NotContains(t, result, "Inf")
		assert.NotContains(t, result, "NaN")
	}
}
