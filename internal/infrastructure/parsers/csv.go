package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVParser parses scenarios from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed scenarios.
// Expected columns: time, unit, velocity, label
func (p *CSVParser) Parse(r io.Reader) ([]RawScenario, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"time", "unit", "velocity"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawScenarios.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawScenario, error) {
	var scenarios []RawScenario
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		scenario, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}

	return scenarios, nil
}

// parseRecord converts a CSV record to a RawScenario.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawScenario, error) {
	scenario := RawScenario{
		Label:   getColumn(record, colIndex, "label"),
		Unit:    getColumn(record, colIndex, "unit"),
		LineNum: lineNum,
	}

	timeValue, err := parseFloatColumn(record, colIndex, "time", lineNum)
	if err != nil {
		return RawScenario{}, err
	}
	scenario.Time = timeValue

	velocity, err := parseFloatColumn(record, colIndex, "velocity", lineNum)
	if err != nil {
		return RawScenario{}, err
	}
	scenario.Velocity = velocity

	return scenario, nil
}

// parseFloatColumn parses a required numeric column.
func parseFloatColumn(record []string, colIndex map[string]int, col string, lineNum int) (float64, error) {
	raw := getColumn(record, colIndex, col)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, col, raw, err)
	}
	return value, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
