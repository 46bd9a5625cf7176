package xlsxparser

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseFileFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"title", "price"},
		{"Widget", 10},
		{},
		{"Gadget", 2.5},
		{"NoPrice"},
	})

	records, err := ParseFile(path, config.XLSXSettings{})
	require.NoError(t, err)

	assert.Equal(t, []types.Record{
		{"title": "Widget", "price": "10"},
		{"title": "Gadget", "price": "2.5"},
		{"title": "NoPrice"},
	}, records)
}

func TestParseFileNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Sales", [][]any{
		{"Product", "Quantity"},
		{"Widget", 3},
	})

	records, err := ParseFile(path, config.XLSXSettings{Sheet: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{"Product": "Widget", "Quantity": "3"}}, records)

	_, err = ParseFile(path, config.XLSXSettings{Sheet: "Missing"})
	assert.ErrorContains(t, err, "not found")
}

func TestParseFromReader(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Product", "Quantity"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Gadget", "-1"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	records, err := Parse(bytes.NewReader(buf.Bytes()), config.XLSXSettings{})
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{"Product": "Gadget", "Quantity": "-1"}}, records)
}

func TestParseEmptySheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", nil)

	_, err := ParseFile(path, config.XLSXSettings{})
	assert.ErrorContains(t, err, "empty")
}

func TestParseNotAWorkbook(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("not a zip")), config.XLSXSettings{})
	assert.ErrorContains(t, err, "failed to open workbook")
}
