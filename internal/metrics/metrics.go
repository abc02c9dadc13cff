// SPDX-License-Identifier: EPL-2.0

// Package metrics counts transcoding results with Prometheus collectors.
// The command is short lived, so the values are written to a node exporter
// textfile at the end of a run instead of being served.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ik5/kotorcodec/audio"
)

// Result label values of FilesProcessed.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Metrics holds the collectors of one run on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	FilesProcessed *prometheus.CounterVec
	BytesWritten   *prometheus.CounterVec
	BatchesRun     *prometheus.CounterVec
	BatchFiles     *prometheus.CounterVec
	BatchFailures  *prometheus.CounterVec
	BatchDuration  *prometheus.HistogramVec
	LastRun        prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		FilesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotorcodec_files_processed_total",
			Help: "Files handled by encode or decode, by container format and result",
		}, []string{"op", "format", "result"}),
		BytesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotorcodec_bytes_written_total",
			Help: "Bytes written to output files",
		}, []string{"op", "format"}),
		BatchesRun: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotorcodec_batches_total",
			Help: "Batch operations run",
		}, []string{"op"}),
		BatchFiles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotorcodec_batch_files_total",
			Help: "Files listed by batch operations",
		}, []string{"op"}),
		BatchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kotorcodec_batch_failed_files_total",
			Help: "Files of batch operations that failed",
		}, []string{"op"}),
		BatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kotorcodec_batch_duration_seconds",
			Help:    "Wall time of batch operations",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8), // 10ms to ~3 minutes
		}, []string{"op"}),
		LastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "kotorcodec_last_run_timestamp_seconds",
			Help: "Unix time the metrics were last written",
		}),
	}
}

// RecordFile counts one encode or decode. A decode of a file without a known
// header counts as skipped.
func (m *Metrics) RecordFile(op string, format audio.Format, written int64, err error) {
	result := ResultOK
	switch {
	case err != nil:
		result = ResultFailed
	case format == audio.None:
		result = ResultSkipped
	}

	m.FilesProcessed.WithLabelValues(op, format.String(), result).Inc()
	if written > 0 {
		m.BytesWritten.WithLabelValues(op, format.String()).Add(float64(written))
	}
}

// RecordBatch counts one batch and observes its duration.
func (m *Metrics) RecordBatch(op string, total, failed int, elapsed time.Duration) {
	m.BatchesRun.WithLabelValues(op).Inc()
	m.BatchFiles.WithLabelValues(op).Add(float64(total))
	m.BatchFailures.WithLabelValues(op).Add(float64(failed))
	m.BatchDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile stamps LastRun and writes every collector to path in the
// text exposition format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	m.LastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, m.registry)
}
