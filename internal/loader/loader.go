// =============================================================================
// Compute Sales - Document Loader
// =============================================================================
//
// This module loads an input document (catalog or sales) into an ordered
// sequence of raw records. The format is chosen by file extension:
//
//   .csv   -> csvparser   (header row + data rows)
//   .xlsx  -> xlsxparser  (first or configured sheet)
//   other  -> JSON array of objects
//
// Any failure here is fatal for the run and is returned as a *LoadError. Row
// level problems are not detected here; they are left to the indexer and the
// aggregator.
//
// =============================================================================

package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/csvparser"
	"github.com/ginjaninja78/compute-sales/internal/types"
	"github.com/ginjaninja78/compute-sales/internal/xlsxparser"
)

// ErrNotArray is wrapped when a JSON document's top level is not an array.
var ErrNotArray = errors.New("expected a JSON array of objects")

// LoadError reports a document that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads input documents using the format settings from the configuration.
type Loader struct {
	csv  config.CSVSettings
	xlsx config.XLSXSettings
}

// New returns a Loader configured from cfg.
func New(cfg *config.Config) *Loader {
	return &Loader{
		csv:  cfg.CSVSettings,
		xlsx: cfg.XLSXSettings,
	}
}

// Load reads the document at path.
func (l *Loader) Load(path string) ([]types.Record, error) {
	var (
		records []types.Record
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = csvparser.ParseFile(path, l.csv)
	case ".xlsx":
		records, err = xlsxparser.ParseFile(path, l.xlsx)
	default:
		records, err = loadJSON(path)
	}

	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return records, nil
}

// loadJSON reads a JSON array. Elements that are not objects become empty
// records so they are still counted, and rejected, downstream.
func loadJSON(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrNotArray, jsonKind(doc))
	}

	records := make([]types.Record, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records[i] = types.Record(obj)
		} else {
			records[i] = types.Record{}
		}
	}

	return records, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
