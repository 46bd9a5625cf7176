// =============================================================================
// Compute Sales - File Manager Utility
// =============================================================================
//
// This module provides the file utilities used by the run driver:
//   - Run identifiers
//   - Output file naming (placeholder expansion)
//   - Writing the results file, replacing any previous one
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRunID returns a random identifier attached to every log line of a run.
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// FILE NAMING UTILITIES
// =============================================================================

// ExpandOutputFileName replaces placeholders in an output file name.
//
// PLACEHOLDERS:
//   - {run_id}    : The run identifier
//   - {timestamp} : Run time as YYYYMMDD_HHMMSS
//   - {date}      : Run date as YYYYMMDD
//
// A name without placeholders is returned unchanged, so the default
// "SalesResults.txt" is overwritten on every run.
//
// EXAMPLE:
//   format: "reports/sales_{date}.txt"
//   output: "reports/sales_20240115.txt"
func ExpandOutputFileName(format, runID string, now time.Time) string {
	replacements := map[string]string{
		"{run_id}":    runID,
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return result
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteTextFile writes content to path, creating parent directories and
// truncating any existing file.
func WriteTextFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
