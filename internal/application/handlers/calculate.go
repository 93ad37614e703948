// Package handlers orchestrates domain services for the presentation layer.
package handlers

import (
	"fmt"

	"github.com/ersonp/dilation-core/internal/domain/entities"
	"github.com/ersonp/dilation-core/internal/domain/services"
)

// CalculateHandler runs single dilation calculations.
type CalculateHandler struct {
	engine    *services.DilationEngine
	formatter *services.NumberFormatter
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(engine *services.DilationEngine, formatter *services.NumberFormatter) *CalculateHandler {
	return &CalculateHandler{
		engine:    engine,
		formatter: formatter,
	}
}

// CalculationResult pairs the raw engine output with display-ready strings.
type CalculationResult struct {
	Raw entities.DilationResult `json:"raw"`

	DilationFactor    string `json:"dilation_factor"`
	DilatedTime       string `json:"dilated_time"`
	OriginalTime      string `json:"original_time"`
	SpeedRatioPercent string `json:"speed_ratio_percent"`
}

// Handle computes dilation for the given input. A nil result with a nil
// error mirrors the engine's zero-velocity no-op.
func (h *CalculateHandler) Handle(input entities.DilationInput) (*CalculationResult, error) {
	result, err := h.engine.Compute(input)
	if err != nil {
		return nil, fmt.Errorf("computing dilation: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	return &CalculationResult{
		Raw:               *result,
		DilationFactor:    h.formatter.Format(result.DilationFactor),
		DilatedTime:       h.formatter.Format(result.DilatedTime),
		OriginalTime:      h.formatter.Format(result.OriginalTime),
		SpeedRatioPercent: fmt.Sprintf("%.6f", result.SpeedRatioPercent),
	}, nil
}
