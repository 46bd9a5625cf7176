// =============================================================================
// Compute Sales - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the tool runs without any configuration file at all.
//
// EXAMPLE (compute-sales.yaml):
//   output_file: SalesResults.txt
//   summary_header: "=== SALES SUMMARY ==="
//   log_level: info
//   log_format: console
//   metrics_file: ""
//   csv_settings:
//     delimiter: ","
//   xlsx_settings:
//     sheet: ""
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultOutputFile is written in the working directory on every run.
	DefaultOutputFile = "SalesResults.txt"

	// DefaultSummaryHeader is the first line of the summary.
	DefaultSummaryHeader = "=== SALES SUMMARY ==="

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputFile is the path the summary is written to, overwriting any
	// existing file.
	// Default: "SalesResults.txt"
	OutputFile string `yaml:"output_file"`

	// SummaryHeader is the header line of the summary block.
	// Default: "=== SALES SUMMARY ==="
	SummaryHeader string `yaml:"summary_header"`

	// LogLevel controls the verbosity of diagnostics on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log encoder.
	// Valid values: "console", "json"
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// MetricsFile, when set, receives the run counters in the Prometheus
	// text exposition format.
	// Default: "" (disabled)
	MetricsFile string `yaml:"metrics_file"`

	// CSVSettings applies to .csv input documents.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// XLSXSettings applies to .xlsx input documents.
	XLSXSettings XLSXSettings `yaml:"xlsx_settings"`
}

// CSVSettings contains settings for parsing CSV input documents.
type CSVSettings struct {
	// Delimiter separates fields. Accepts a single character or one of
	// "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// XLSXSettings contains settings for reading XLSX input documents.
type XLSXSettings struct {
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet string `yaml:"sheet"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path returns
//     the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.SummaryHeader == "" {
		cfg.SummaryHeader = DefaultSummaryHeader
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
}

// Validate checks that the configuration values are coherent.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json (got %q)", c.LogFormat)
	}

	if strings.ContainsAny(c.SummaryHeader, "\r\n") {
		return fmt.Errorf("summary_header must be a single line")
	}

	return nil
}
