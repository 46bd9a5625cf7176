// =============================================================================
// Compute Sales - CSV Parser Module
// =============================================================================
//
// This module reads CSV input documents as an alternative to JSON. The first
// row names the fields; every later row becomes one record.
//
// ROW SEMANTICS:
//   - Values are kept as strings; numeric conversion happens downstream
//   - Rows shorter than the header leave the trailing fields absent
//   - Rows made only of blank cells are skipped
//   - Extra cells beyond the header are ignored
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseFile opens filePath and parses it with Parse.
func ParseFile(filePath string, settings config.CSVSettings) ([]types.Record, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file, settings)
}

// Parse reads a CSV document and returns one record per data row.
//
// PARAMETERS:
//   - r: The CSV document.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The records, in document order.
//   - An error if the document is not valid CSV or has no header row.
func Parse(r io.Reader, settings config.CSVSettings) ([]types.Record, error) {
	csvReader := csv.NewReader(bufio.NewReader(r))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := cleanHeaders(allRows[0])
	return extractRecords(allRows[1:], headers), nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Allow a variable number of fields per row.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// cleanHeaders trims header names and strips a UTF-8 byte order mark.
// Empty headers are named Column_<n> so their cells stay addressable.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// extractRecords converts data rows to records keyed by header.
func extractRecords(rows [][]string, headers []string) []types.Record {
	records := make([]types.Record, 0, len(rows))

	for _, row := range rows {
		if isRowEmpty(row) {
			continue
		}

		rec := make(types.Record, len(headers))
		for colIndex, header := range headers {
			if colIndex >= len(row) {
				break
			}
			rec[header] = strings.TrimSpace(row[colIndex])
		}

		records = append(records, rec)
	}

	return records
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
