package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agora_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedConnections is the gauge of active feed WebSocket connections.
	FeedConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agora_feed_connections",
		Help: "Number of active feed WebSocket connections",
	})

	// FeedEvents counts feed events broadcast by type.
	FeedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agora_feed_events_total",
		Help: "Total feed events broadcast by event type",
	}, []string{"event_type"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
