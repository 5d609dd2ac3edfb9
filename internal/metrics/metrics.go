package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	// Store metrics
	StoreOperationsTotal      prometheus.CounterVec
	NotificationsCreatedTotal prometheus.CounterVec
	SnapshotSavesTotal        prometheus.CounterVec

	// Assistant metrics
	AssistantCallsTotal prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Get returns the metrics singleton, registering all collectors on
// first use.
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			StoreOperationsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "store_operations_total",
					Help: "Total number of store mutations by operation",
				},
				[]string{"operation"},
			),
			NotificationsCreatedTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "notifications_created_total",
					Help: "Notifications created by fan-out, by type",
				},
				[]string{"type"},
			),
			SnapshotSavesTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "snapshot_saves_total",
					Help: "Store snapshot writes by outcome",
				},
				[]string{"outcome"},
			),
			AssistantCallsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "assistant_calls_total",
					Help: "Generative assistant invocations by kind and outcome",
				},
				[]string{"kind", "outcome"},
			),
		}
	})
	return instance
}
