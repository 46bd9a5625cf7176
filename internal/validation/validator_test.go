package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{name: "json number", value: 10.0, want: 10},
		{name: "negative number", value: -2.5, want: -2.5},
		{name: "numeric string", value: "12.75", want: 12.75},
		{name: "padded string", value: "  3 ", want: 3},
		{name: "negative string", value: "-4", want: -4},
		{name: "json.Number", value: json.Number("7.5"), want: 7.5},
		{name: "int", value: 5, want: 5},
		{name: "non numeric string", value: "N/A", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "blank string", value: "   ", wantErr: true},
		{name: "bool", value: true, wantErr: true},
		{name: "null", value: nil, wantErr: true},
		{name: "object", value: map[string]any{"a": 1.0}, wantErr: true},
		{name: "array", value: []any{1.0}, wantErr: true},
		{name: "nan string", value: "NaN", wantErr: true},
		{name: "inf string", value: "Inf", wantErr: true},
		{name: "inf float", value: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireString(t *testing.T) {
	rec := types.Record{"title": "Widget", "price": 10.0}

	s, verr := RequireString(rec, "title", 1)
	assert.Nil(t, verr)
	assert.Equal(t, "Widget", s)

	_, verr = RequireString(rec, "Product", 2)
	require.NotNil(t, verr)
	assert.Equal(t, RuleRequired, verr.Rule)
	assert.Equal(t, 2, verr.RowNumber)
	assert.Contains(t, verr.Error(), "field is missing")

	_, verr = RequireString(rec, "price", 3)
	require.NotNil(t, verr)
	assert.Equal(t, RuleString, verr.Rule)
	assert.Equal(t, "10", verr.Value)
}

func TestRequireNumber(t *testing.T) {
	rec := types.Record{"price": "N/A", "Quantity": "3"}

	n, verr := RequireNumber(rec, "Quantity", 1)
	assert.Nil(t, verr)
	assert.Equal(t, 3.0, n)

	_, verr = RequireNumber(rec, "price", 4)
	require.NotNil(t, verr)
	assert.Equal(t, RuleNumeric, verr.Rule)
	assert.Equal(t, "N/A", verr.Value)
	assert.Contains(t, verr.Error(), "row 4")

	_, verr = RequireNumber(rec, "missing", 5)
	require.NotNil(t, verr)
	assert.Equal(t, RuleRequired, verr.Rule)
}
