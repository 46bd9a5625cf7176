package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

func defaultSettings() config.CSVSettings {
	return config.Default().CSVSettings
}

func TestParseRecords(t *testing.T) {
	doc := "\ufefftitle,price,type\nWidget,10,tool\n\n, ,\nGadget, 2.5 \n"

	records, err := Parse(strings.NewReader(doc), defaultSettings())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, types.Record{"title": "Widget", "price": "10", "type": "tool"}, records[0])
	assert.Equal(t, types.Record{"title": "Gadget", "price": "2.5"}, records[1])
}

func TestParseShortRowLeavesFieldsAbsent(t *testing.T) {
	records, err := Parse(strings.NewReader("Product,Quantity\nWidget\n"), defaultSettings())
	require.NoError(t, err)

	require.Len(t, records, 1)
	_, ok := records[0]["Quantity"]
	assert.False(t, ok)
}

func TestParseDelimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		doc       string
	}{
		{delimiter: "pipe", doc: "Product|Quantity\nWidget|3\n"},
		{delimiter: "tab", doc: "Product\tQuantity\nWidget\t3\n"},
		{delimiter: ";", doc: "Product;Quantity\nWidget;3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			records, err := Parse(strings.NewReader(tt.doc), config.CSVSettings{Delimiter: tt.delimiter})
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, types.Record{"Product": "Widget", "Quantity": "3"}, records[0])
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(""), defaultSettings())
	assert.ErrorContains(t, err, "empty")
}

func TestCleanHeadersNamesBlankColumns(t *testing.T) {
	assert.Equal(t, []string{"a", "Column_2", "c"}, cleanHeaders([]string{" a ", "", "c"}))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("Product,Quantity\nWidget,1\n"), 0644))

	records, err := ParseFile(path, defaultSettings())
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "nope.csv"), defaultSettings())
	assert.ErrorContains(t, err, "failed to open file")
}
