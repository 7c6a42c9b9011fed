// Package metrics records per-run check metrics in a private Prometheus
// registry. A run is a short-lived process, so the registry is written once
// to a node-exporter textfile instead of being scraped.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/lintbubble/internal/orchestration"
)

// PrometheusRecorder implements orchestration.CheckRecorder.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	memory   *MemoryCollector

	checksTotal   *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
	filesChecked  prometheus.Gauge
	runDuration   prometheus.Gauge
	heapAlloc     prometheus.Gauge
	lastRun       prometheus.Gauge
}

// Verify interface compliance.
var _ orchestration.CheckRecorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		memory:   NewMemoryCollector(),
		checksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lintbubble_checks_total",
				Help: "Number of files checked, by outcome (clean, findings, crashed).",
			},
			[]string{"outcome"},
		),
		checkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lintbubble_check_duration_seconds",
				Help:    "Wall-clock duration of a single linter invocation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		filesChecked: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lintbubble_run_files",
			Help: "Number of files checked by the last run.",
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lintbubble_run_duration_seconds",
			Help: "Wall-clock duration of the last run, delays included.",
		}),
		heapAlloc: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lintbubble_heap_alloc_bytes",
			Help: "Heap in use by the wrapper at the end of the last run.",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lintbubble_last_run_timestamp_seconds",
			Help: "Unix time at which the last run finished.",
		}),
	}
}

// ObserveCheck implements orchestration.CheckRecorder.
func (p *PrometheusRecorder) ObserveCheck(outcome string, d time.Duration) {
	p.checksTotal.WithLabelValues(outcome).Inc()
	p.checkDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveRun implements orchestration.CheckRecorder.
func (p *PrometheusRecorder) ObserveRun(files int, d time.Duration) {
	p.filesChecked.Set(float64(files))
	p.runDuration.Set(d.Seconds())
	p.heapAlloc.Set(float64(p.memory.Snapshot().HeapAlloc))
	p.lastRun.SetToCurrentTime()
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is written to a temporary name and renamed, so a collector never
// reads a partial file.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
