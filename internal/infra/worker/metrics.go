package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"portfolio-backend/internal/pkg/config"
)

// Metrics provides Prometheus metrics for the sync worker. It embeds the
// shared ConfigMetrics for configuration fallback tracking and adds
// job-level metrics for the scheduled reconciliation runs.
type Metrics struct {
	*config.ConfigMetrics

	// SyncJobRunsTotal counts reconciliation runs by status (success/failure/skipped).
	SyncJobRunsTotal *prometheus.CounterVec

	// SyncJobDurationSeconds measures the duration of reconciliation runs.
	SyncJobDurationSeconds prometheus.Histogram

	// SyncJobItemsChangedTotal counts items created or deleted by reconciliation.
	SyncJobItemsChangedTotal *prometheus.CounterVec

	// SyncJobLastSuccessTimestamp records the Unix timestamp of the last successful run.
	SyncJobLastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates the worker metrics. Registration happens via promauto
// at creation time.
func NewMetrics() *Metrics {
	return &Metrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		SyncJobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_sync_job_runs_total",
			Help: "Total number of sync job runs by status (success/failure/skipped)",
		}, []string{"status"}),

		SyncJobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_sync_job_duration_seconds",
			Help:    "Duration of sync job execution in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}),

		SyncJobItemsChangedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_sync_job_items_changed_total",
			Help: "Total number of portfolio items changed by sync jobs, by kind (created/deleted)",
		}, []string{"kind"}),

		SyncJobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_sync_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful sync job run",
		}),
	}
}

// RecordJobRun increments the run counter for the given status.
func (m *Metrics) RecordJobRun(status string) {
	m.SyncJobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes the duration of a reconciliation run in seconds.
func (m *Metrics) RecordJobDuration(seconds float64) {
	m.SyncJobDurationSeconds.Observe(seconds)
}

// RecordItemsChanged adds the created and deleted counts from a run.
func (m *Metrics) RecordItemsChanged(created, deleted int) {
	m.SyncJobItemsChangedTotal.WithLabelValues("created").Add(float64(created))
	m.SyncJobItemsChangedTotal.WithLabelValues("deleted").Add(float64(deleted))
}

// RecordLastSuccess records the current time as the last successful run.
func (m *Metrics) RecordLastSuccess() {
	m.SyncJobLastSuccessTimestamp.SetToCurrentTime()
}
