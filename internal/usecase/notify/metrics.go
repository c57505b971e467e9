package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch metrics for the notification subsystem.
var (
	notifyDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_dispatch_total",
			Help: "Total number of notification dispatch attempts per channel",
		},
		[]string{"channel"},
	)

	notifyResultTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_result_total",
			Help: "Total number of notification results per channel and status",
		},
		[]string{"channel", "status"}, // status: success, failure
	)

	notifyDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_dropped_total",
			Help: "Total number of notifications dropped before sending",
		},
		[]string{"channel", "reason"}, // reason: pool_full, circuit_open
	)

	notifyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notify_send_duration_seconds",
			Help:    "Time taken to deliver a notification",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"channel"},
	)

	notifyCircuitOpenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_circuit_breaker_open_total",
			Help: "Total number of times a channel circuit breaker opened",
		},
		[]string{"channel"},
	)

	notifyActiveGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notify_active_goroutines",
			Help: "Number of in-flight notification goroutines",
		},
	)

	notifyChannelsEnabled = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notify_channels_enabled",
			Help: "Number of enabled notification channels",
		},
	)
)
