// Package metrics holds the Prometheus collectors of the order service.
//
// Collectors are package-level and registered on Registry at init. The HTTP
// server exposes Registry on /metrics and records request metrics through
// echoprometheus against the same registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes every metric of the service.
const Namespace = "pizzeria"

// Claim sources.
const (
	SourceAPI = "api"
	SourceJob = "job"
)

var (
	// OrdersPlaced counts orders stored by PlaceOrder.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of placed orders.",
	})

	// OrdersClaimed counts orders taken off the kitchen queue, by who claimed them.
	OrdersClaimed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "orders",
			Name:      "claimed_total",
			Help:      "Total number of claimed orders.",
		},
		[]string{"source"}, // "api" | "job"
	)

	// StatusUpdates counts explicit status changes. Statuses outside the named
	// set share the "other" label.
	StatusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "orders",
			Name:      "status_updates_total",
			Help:      "Total number of order status updates.",
		},
		[]string{"status"},
	)

	// JobRuns counts scheduled job executions by result.
	JobRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Total scheduled job runs.",
		},
		[]string{"job", "result"}, // result: "claimed" | "idle" | "failed"
	)

	// JobDuration tracks how long scheduled jobs take.
	JobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "jobs",
			Name:      "duration_seconds",
			Help:      "Duration of scheduled job runs in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"job"},
	)
)

// Registry is the registry every collector of this package is registered on.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	Registry.MustRegister(
		OrdersPlaced,
		OrdersClaimed,
		StatusUpdates,
		JobRuns,
		JobDuration,
	)
}

// RecordJobRun records one job execution:
//
//	defer func(start time.Time) { metrics.RecordJobRun("kitchen", result, start) }(time.Now())
func RecordJobRun(job, result string, start time.Time) {
	JobRuns.WithLabelValues(job, result).Inc()
	JobDuration.WithLabelValues(job).Observe(time.Since(start).Seconds())
}
