package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Subsystem: "kafka_publisher",
		Name:      "events_published_total",
		Help:      "Total number of events acknowledged by Kafka.",
	}, []string{"event_type"})

	eventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderflow",
		Subsystem: "kafka_publisher",
		Name:      "events_failed_total",
		Help:      "Total number of events that were not delivered.",
	}, []string{"event_type", "stage"})

	publishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "orderflow",
		Subsystem: "kafka_publisher",
		Name:      "enqueue_duration_seconds",
		Help:      "Time spent handing events to the async writer.",
		Buckets:   prometheus.DefBuckets,
	})
)
