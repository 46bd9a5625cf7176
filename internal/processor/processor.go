// =============================================================================
// Compute Sales - Processor Module
// =============================================================================
//
// This module orchestrates a single run, from loading the input documents to
// writing the results file.
//
// PROCESSING PIPELINE:
//   1. Load the catalog document
//   2. Load the sales document
//   3. Index the catalog into a price map
//   4. Aggregate the sales against the price map
//   5. Render the summary and print it
//   6. Write the results file
//   7. Write the metrics textfile (when configured)
//
// Steps 1 and 2 are the only fatal ones for input problems. A failure there
// is returned before anything is printed or written, so no partial results
// file ever exists. Row-level problems never stop the run.
//
// =============================================================================

package processor

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/compute-sales/internal/catalog"
	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/loader"
	"github.com/ginjaninja78/compute-sales/internal/metrics"
	"github.com/ginjaninja78/compute-sales/internal/report"
	"github.com/ginjaninja78/compute-sales/internal/sales"
	"github.com/ginjaninja78/compute-sales/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a completed run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// OutputFile is the path the summary was written to.
	OutputFile string

	// Summary is the rendered report content.
	Summary report.Summary

	// Catalog holds the catalog indexing counts.
	Catalog catalog.IndexStats

	// Sales holds the aggregation result.
	Sales sales.Result
}

// =============================================================================
// PROCESSOR STRUCTURE
// =============================================================================

// Processor runs the catalog/sales pipeline for one pair of documents.
type Processor struct {
	cfg     *config.Config
	loader  *loader.Loader
	logger  *zap.Logger
	metrics *metrics.Metrics
	stdout  io.Writer
	runID   string

	// now is replaceable in tests.
	now func() time.Time
}

// New creates a Processor. The summary is printed to stdout.
func New(cfg *config.Config, logger *zap.Logger, stdout io.Writer) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := utils.NewRunID()

	return &Processor{
		cfg:     cfg,
		loader:  loader.New(cfg),
		logger:  logger.With(zap.String("run_id", runID)),
		metrics: metrics.NewMetrics(),
		stdout:  stdout,
		runID:   runID,
		now:     time.Now,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
//
// PARAMETERS:
//   - catalogPath: The catalog document.
//   - salesPath: The sales document.
//
// RETURNS:
//   - The Result of the run.
//   - An error wrapping a *loader.LoadError if either document could not be
//     loaded, or an error if the results file could not be written.
func (p *Processor) Run(catalogPath, salesPath string) (Result, error) {
	startTime := p.now()
	result := Result{RunID: p.runID}

	p.logger.Info("Starting run",
		zap.String("catalog", catalogPath),
		zap.String("sales", salesPath),
	)

	// =========================================================================
	// STEP 1-2: LOAD INPUT DOCUMENTS
	// =========================================================================

	catalogRecords, err := p.loader.Load(catalogPath)
	if err != nil {
		p.fail(startTime)
		return result, fmt.Errorf("failed to load catalog: %w", err)
	}

	salesRecords, err := p.loader.Load(salesPath)
	if err != nil {
		p.fail(startTime)
		return result, fmt.Errorf("failed to load sales: %w", err)
	}

	p.logger.Debug("Loaded input documents",
		zap.Int("catalog_entries", len(catalogRecords)),
		zap.Int("sales_records", len(salesRecords)),
	)

	// =========================================================================
	// STEP 3-4: INDEX AND AGGREGATE
	// =========================================================================

	indexer := catalog.NewIndexer(p.logger)
	prices := indexer.Index(catalogRecords)
	result.Catalog = indexer.Stats()

	result.Sales = sales.Aggregate(prices, salesRecords)

	elapsed := p.now().Sub(startTime)

	p.logger.Info("Computed sales total",
		zap.Float64("total", result.Sales.Total),
		zap.Int("records", result.Sales.Records()),
		zap.Int("valid", result.Sales.Tally[sales.OutcomeValid]),
		zap.Int("skipped", len(result.Sales.Notes)),
	)

	// =========================================================================
	// STEP 5: RENDER AND PRINT
	// =========================================================================

	result.Summary = report.Summary{
		Header:  p.cfg.SummaryHeader,
		Total:   result.Sales.Total,
		Notes:   result.Sales.Notes,
		Elapsed: elapsed,
	}
	text := result.Summary.Render()

	if p.stdout != nil {
		fmt.Fprintln(p.stdout, text)
	}

	// =========================================================================
	// STEP 6: WRITE RESULTS FILE
	// =========================================================================

	outputPath := utils.ExpandOutputFileName(p.cfg.OutputFile, p.runID, startTime)
	if utils.FileExists(outputPath) {
		p.logger.Debug("Replacing existing results file", zap.String("path", outputPath))
	}
	if err := utils.WriteTextFile(outputPath, text); err != nil {
		p.fail(startTime)
		return result, fmt.Errorf("failed to write results: %w", err)
	}
	result.OutputFile = outputPath

	p.logger.Info("Wrote results", zap.String("path", outputPath))

	// =========================================================================
	// STEP 7: METRICS
	// =========================================================================

	p.metrics.ObserveCatalog(result.Catalog)
	p.metrics.ObserveSales(result.Sales)
	p.metrics.ObserveRun(elapsed, p.now(), true)
	p.writeMetrics()

	return result, nil
}

// fail records an unsuccessful run in the metrics textfile.
func (p *Processor) fail(startTime time.Time) {
	finished := p.now()
	p.metrics.ObserveRun(finished.Sub(startTime), finished, false)
	p.writeMetrics()
}

// writeMetrics writes the textfile when configured. Failures are logged
// and do not change the outcome of the run.
func (p *Processor) writeMetrics() {
	if p.cfg.MetricsFile == "" {
		return
	}
	if err := p.metrics.WriteTextfile(p.cfg.MetricsFile); err != nil {
		p.logger.Warn("Failed to write metrics", zap.Error(err))
	}
}
