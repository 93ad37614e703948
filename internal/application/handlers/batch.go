package handlers

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ersonp/dilation-core/internal/domain/entities"
	"github.com/ersonp/dilation-core/internal/infrastructure/parsers"
)

// BatchHandler runs a file of dilation scenarios through the engine.
type BatchHandler struct {
	calculate *CalculateHandler
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(calculate *CalculateHandler) *BatchHandler {
	return &BatchHandler{
		calculate: calculate,
	}
}

// BatchOptions controls batch behavior.
type BatchOptions struct {
	Format string // "json", "csv", or "auto"
}

// ScenarioOutcome is the per-scenario entry of a batch report.
type ScenarioOutcome struct {
	Label  string             `json:"label,omitempty"`
	Line   int                `json:"line"`
	Result *CalculationResult `json:"result,omitempty"`
	AtRest bool               `json:"at_rest,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// BatchReport summarizes a batch run.
type BatchReport struct {
	RunID     string            `json:"run_id"`
	Succeeded int               `json:"succeeded"`
	AtRest    int               `json:"at_rest"`
	Failed    int               `json:"failed"`
	Outcomes  []ScenarioOutcome `json:"outcomes"`
}

// Handle parses the scenario file and computes every row. Scenarios that
// fail validation are reported per row and do not abort the run.
func (h *BatchHandler) Handle(filePath string, opts BatchOptions) (*BatchReport, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	scenarios, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	report := &BatchReport{RunID: uuid.New().String()}

	for _, scenario := range scenarios {
		outcome := h.run(scenario)
		switch {
		case outcome.Error != "":
			report.Failed++
		case outcome.AtRest:
			report.AtRest++
		default:
			report.Succeeded++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, nil
}

// run computes a single scenario and folds every arm of the engine contract
// into one report entry.
func (h *BatchHandler) run(scenario parsers.RawScenario) ScenarioOutcome {
	outcome := ScenarioOutcome{
		Label: scenario.Label,
		Line:  scenario.LineNum,
	}

	unit, err := entities.ParseTimeUnit(scenario.Unit)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	result, err := h.calculate.Handle(entities.DilationInput{
		Time:     scenario.Time,
		Unit:     unit,
		Velocity: scenario.Velocity,
	})
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	if result == nil {
		outcome.AtRest = true
		return outcome
	}

	outcome.Result = result
	return outcome
}
