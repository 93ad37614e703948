package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses scenarios from JSON format.
type JSONParser struct{}

// Parse reads a JSON array of scenarios from the reader.
func (p *JSONParser) Parse(r io.Reader) ([]RawScenario, error) {
	var scenarios []RawScenario

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&scenarios); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range scenarios {
		scenarios[i].LineNum = i + 1
	}

	return scenarios, nil
}
