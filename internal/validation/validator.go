// =============================================================================
// Compute Sales - Field Validation
// =============================================================================
//
// This module extracts typed fields from raw input records. Both the catalog
// indexer and the sales aggregator use it so that "present and numeric" means
// the same thing for a price as it does for a quantity.
//
// VALIDATION STRATEGY:
//   - Errors are returned, never raised past the caller
//   - Each error carries the field, the offending value and the row number
//   - Callers decide what a failure means (skip + log, or skip + note)
//
// NUMERIC RULES:
//   - JSON numbers are accepted as is
//   - Strings are trimmed and parsed as decimal numbers ("10", " 2.5 ", "-3")
//   - NaN and Inf are rejected
//   - Booleans, null, objects, arrays and empty strings are rejected
//
// =============================================================================

package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// VALIDATION RULES
// =============================================================================

const (
	// RuleRequired is violated when a field is absent from the record.
	RuleRequired = "required"

	// RuleString is violated when a field is present but not a string.
	RuleString = "string"

	// RuleNumeric is violated when a field cannot be converted to a number.
	RuleNumeric = "numeric"
)

// =============================================================================
// VALIDATION ERROR TYPE
// =============================================================================

// ValidationError represents a single field that failed extraction.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string

	// Value is the offending value rendered as text.
	// Empty when the field is absent.
	Value string

	// Rule is the validation rule that was violated.
	Rule string

	// Message is a human-readable error message.
	Message string

	// RowNumber is the 1-based position of the record in its document.
	RowNumber int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Rule == RuleRequired {
		return fmt.Sprintf("row %d, field '%s': %s", e.RowNumber, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d, field '%s': %s (value: '%s')",
		e.RowNumber,
		e.Field,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// FIELD EXTRACTION
// =============================================================================

// RequireString returns the string stored under field.
//
// PARAMETERS:
//   - record: The raw record.
//   - field: The field name (case-sensitive).
//   - row: The 1-based row number, used in the error.
//
// RETURNS:
//   - The string value.
//   - A ValidationError if the field is absent or not a string.
func RequireString(record types.Record, field string, row int) (string, *ValidationError) {
	raw, ok := record[field]
	if !ok {
		return "", missing(field, row)
	}

	s, ok := raw.(string)
	if !ok {
		return "", &ValidationError{
			Field:     field,
			Value:     render(raw),
			Rule:      RuleString,
			Message:   "value is not a string",
			RowNumber: row,
		}
	}

	return s, nil
}

// RequireNumber returns the numeric value stored under field.
// See ParseNumber for the accepted representations.
func RequireNumber(record types.Record, field string, row int) (float64, *ValidationError) {
	raw, ok := record[field]
	if !ok {
		return 0, missing(field, row)
	}

	n, err := ParseNumber(raw)
	if err != nil {
		return 0, &ValidationError{
			Field:     field,
			Value:     render(raw),
			Rule:      RuleNumeric,
			Message:   err.Error(),
			RowNumber: row,
		}
	}

	return n, nil
}

// ParseNumber converts a decoded value to a finite float64.
func ParseNumber(value any) (float64, error) {
	var n float64

	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("value '%s' is not a valid number", v.String())
		}
		n = f
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("value is empty")
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("value '%s' is not a valid number", v)
		}
		n = f
	default:
		return 0, fmt.Errorf("value of type %T is not a number", value)
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("value '%s' is not a finite number", render(value))
	}

	return n, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func missing(field string, row int) *ValidationError {
	return &ValidationError{
		Field:     field,
		Rule:      RuleRequired,
		Message:   "field is missing",
		RowNumber: row,
	}
}

// render turns a decoded value into text for diagnostics.
func render(value any) string {
	if value == nil {
		return "null"
	}
	if s, ok := value.(string); ok {
		return s
	}
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}
