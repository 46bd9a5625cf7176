// =============================================================================
// Compute Sales - Run Function
// =============================================================================
//
// This file wires the configuration, the logger and the processor together
// for one invocation of the root command.
//
// STEPS:
//   1. Load the configuration and apply flag overrides
//   2. Build the logger
//   3. Run the processor
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/logging"
	"github.com/ginjaninja78/compute-sales/internal/processor"
)

// runCompute computes the sales total for the given documents and prints
// the summary to stdout.
func runCompute(stdout io.Writer, catalogPath, salesPath string) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFile != "" {
		cfg.OutputFile = outputFile
	}
	if metricsFile != "" {
		cfg.MetricsFile = metricsFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// =========================================================================
	// STEP 2: LOGGING
	// =========================================================================

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfgFile != "" {
		logger.Debug("Using config file", zap.String("path", cfgFile))
	}

	// =========================================================================
	// STEP 3: RUN
	// =========================================================================

	proc := processor.New(cfg, logger, stdout)
	if _, err := proc.Run(catalogPath, salesPath); err != nil {
		logger.Error("Run failed", zap.Error(err))
		return err
	}

	return nil
}
