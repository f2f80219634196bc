package upload

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReaderConfig controls header handling for an input file.
type ReaderConfig struct {
	HasHeader  bool
	SkipHeader bool
}

// ReadFile parses a comma-delimited file into ordered rows of string fields.
// The csv reader enforces a uniform field count across rows, so the first
// row's width is authoritative for the whole batch.
func ReadFile(path string, cfg ReaderConfig) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.HasHeader && cfg.SkipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
