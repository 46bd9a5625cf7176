// =============================================================================
// Compute Sales - XLSX Parser
// =============================================================================
//
// This module reads XLSX workbooks as input documents. Catalogs are often
// maintained in spreadsheets, so a workbook can be passed wherever a JSON
// document is expected.
//
// SHEET LAYOUT (Expected):
//
//   | Column A | Column B | ... |
//   |----------|----------|-----|
//   | title    | price    |     |   <- row 1: field names
//   | Widget   | 10       |     |   <- row 2..n: one record per row
//   | Gadget   | 2.50     |     |
//
//   Cell values are read as displayed text; numeric conversion happens in
//   the validation package like for every other format.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseFile opens a workbook from disk and parses it with the given settings.
func ParseFile(filePath string, settings config.XLSXSettings) ([]types.Record, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, settings)
}

// Parse reads a workbook from r.
func Parse(r io.Reader, settings config.XLSXSettings) ([]types.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseWorkbook(f, settings)
}

// parseWorkbook extracts records from the configured sheet.
//
// PARAMETERS:
//   - f: The open workbook.
//   - settings: The XLSX settings. An empty sheet name selects the first sheet.
//
// RETURNS:
//   - The records in row order.
//   - An error if the sheet is missing, unreadable or has no header row.
func parseWorkbook(f *excelize.File, settings config.XLSXSettings) ([]types.Record, error) {
	sheetName := settings.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}

	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rec := make(types.Record, len(headers))
		for i, header := range headers {
			if i >= len(row) {
				break
			}
			cell := strings.TrimSpace(row[i])
			// excelize trims trailing empty cells but keeps interior ones.
			if cell == "" {
				continue
			}
			rec[header] = cell
		}
		records = append(records, rec)
	}

	return records, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
