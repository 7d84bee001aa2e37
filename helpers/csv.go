package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chartkit-org/chartkit/engine"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Record
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, S3, Sheets).
// This helper converts the raw bytes into generic Records for the engine.
// ============================================================================

// ParseCSV parses CSV bytes into Records. Numeric-looking cells become
// float64, everything else stays a string, and blank cells are omitted so
// the engine sees them as absent fields.
func ParseCSV(data []byte) ([]engine.Record, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var records []engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(records)+2, err)
		}

		record := make(engine.Record, len(headers))
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // absent field
			}
			if n, err := strconv.ParseFloat(cell, 64); err == nil {
				record[headers[i]] = n
			} else {
				record[headers[i]] = cell
			}
		}
		records = append(records, record)
	}

	return records, nil
}
