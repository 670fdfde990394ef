package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "testys_events_received_total",
			Help: "Total number of Firestore events received.",
		},
	)

	NoOpEventsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "testys_noop_events_total",
			Help: "Total number of events skipped because they carried no document.",
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testys_notifications_total",
			Help: "Total number of Slack notifications by status.",
		},
		[]string{"status"}, // delivered, failed
	)

	DeliveryLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "testys_delivery_latency_seconds",
			Help:    "Latency of webhook POSTs.",
			Buckets: prometheus.DefBuckets,
		},
	)

	PayloadTruncatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "testys_payload_truncated_total",
			Help: "Total number of raw-data blocks truncated to fit the Slack limit.",
		},
	)
)

func MustRegister(reg *prometheus.Registry) {
	reg.MustRegister(
		EventsReceivedTotal,
		NoOpEventsTotal,
		NotificationsTotal,
		DeliveryLatency,
		PayloadTruncatedTotal,
	)
}

func RecordEventReceived() {
	EventsReceivedTotal.Inc()
}

func RecordNoOp() {
	NoOpEventsTotal.Inc()
}

func RecordNotification(status string, latency time.Duration) {
	NotificationsTotal.WithLabelValues(status).Inc()
	DeliveryLatency.Observe(latency.Seconds())
}

func RecordTruncation() {
	PayloadTruncatedTotal.Inc()
}
