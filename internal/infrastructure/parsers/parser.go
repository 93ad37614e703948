// Package parsers provides parsers for reading dilation scenarios from
// structured files.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawScenario is one dilation scenario parsed from an external file,
// before unit validation.
type RawScenario struct {
	Label    string  `json:"label,omitempty"`
	Time     float64 `json:"time"`
	Unit     string  `json:"unit"`
	Velocity float64 `json:"velocity"`
	LineNum  int     `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing scenarios from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawScenario, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
