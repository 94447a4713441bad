package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeHandled   = "handled"
	outcomeIgnored   = "ignored"
	outcomeMalformed = "malformed"
	outcomeFailed    = "failed"
)

var (
	eventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "events_consumed_total",
			Help:      "Total number of consumed events by topic and outcome",
		},
		[]string{"topic", "outcome"},
	)

	fetchErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "fetch_errors_total",
			Help:      "Total number of Kafka fetch errors",
		},
		[]string{"topic"},
	)

	commitErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
		[]string{"topic"},
	)

	eventProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "event_processing_duration_seconds",
			Help:      "Histogram of event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "events_in_progress",
			Help:      "Number of events currently being processed",
		},
	)

	lowStockAlerts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orderflow",
			Subsystem: "kafka_consumer",
			Name:      "low_stock_alerts_total",
			Help:      "Total number of low stock notifications raised",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsConsumed,
		fetchErrors,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
		lowStockAlerts,
	)
}
