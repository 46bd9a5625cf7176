package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ginjaninja78/compute-sales/internal/catalog"
	"github.com/ginjaninja78/compute-sales/internal/sales"
)

// Metrics bundles Prometheus collectors for a single run.
type Metrics struct {
	Registry        *prometheus.Registry
	CatalogEntries  *prometheus.CounterVec
	SalesRecords    *prometheus.CounterVec
	RevenueTotal    prometheus.Gauge
	RunDuration     prometheus.Gauge
	LastRunSuccess  prometheus.Gauge
	LastRunUnixTime prometheus.Gauge
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	catalogEntries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compute_sales_catalog_entries_total",
			Help: "Catalog entries read, by outcome.",
		},
		[]string{"outcome"},
	)
	salesRecords := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compute_sales_records_total",
			Help: "Sales records read, by outcome.",
		},
		[]string{"outcome"},
	)
	revenue := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "compute_sales_revenue_total",
			Help: "Unrounded revenue computed by the last run.",
		},
	)
	duration := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "compute_sales_run_duration_seconds",
			Help: "Time spent loading and computing in the last run.",
		},
	)
	success := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "compute_sales_last_run_success",
			Help: "1 if the last run completed, 0 otherwise.",
		},
	)
	lastRun := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "compute_sales_last_run_timestamp_seconds",
			Help: "Unix time at which the last run finished.",
		},
	)

	registry.MustRegister(catalogEntries, salesRecords, revenue, duration, success, lastRun)

	for _, outcome := range []string{"indexed", "skipped"} {
		catalogEntries.WithLabelValues(outcome)
	}
	for _, outcome := range sales.Outcomes {
		salesRecords.WithLabelValues(string(outcome))
	}

	return &Metrics{
		Registry:        registry,
		CatalogEntries:  catalogEntries,
		SalesRecords:    salesRecords,
		RevenueTotal:    revenue,
		RunDuration:     duration,
		LastRunSuccess:  success,
		LastRunUnixTime: lastRun,
	}
}

// ObserveCatalog records how the catalog entries were handled.
func (m *Metrics) ObserveCatalog(stats catalog.IndexStats) {
	m.CatalogEntries.WithLabelValues("indexed").Add(float64(stats.Indexed))
	m.CatalogEntries.WithLabelValues("skipped").Add(float64(stats.Skipped))
}

// ObserveSales records the per-outcome tally and the revenue of a result.
func (m *Metrics) ObserveSales(res sales.Result) {
	for outcome, n := range res.Tally {
		m.SalesRecords.WithLabelValues(string(outcome)).Add(float64(n))
	}
	m.RevenueTotal.Set(res.Total)
}

// ObserveRun records the run duration and completion time.
func (m *Metrics) ObserveRun(elapsed time.Duration, finished time.Time, ok bool) {
	m.RunDuration.Set(elapsed.Seconds())
	m.LastRunUnixTime.Set(float64(finished.Unix()))
	if ok {
		m.LastRunSuccess.Set(1)
	} else {
		m.LastRunSuccess.Set(0)
	}
}

// WriteTextfile writes the registry in the text exposition format, suitable
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
