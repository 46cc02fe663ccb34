package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the employee manager:
// a counter for store mutations by operation, a gauge tracking the current
// collection size, and a histogram for snapshot write latency.
type Metrics struct {
	Mutations        *prometheus.CounterVec
	EmployeesTotal   prometheus.Gauge
	SnapshotDuration prometheus.Histogram
	SnapshotFailures prometheus.Counter
}

// NewMetrics creates a Metrics instance registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_manager_mutations_total",
			Help: "Total committed employee store mutations by operation.",
		}, []string{"op"}), // op: 'add', 'update', 'delete', 'bulk_delete'
		EmployeesTotal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employee_manager_employees",
			Help: "Current number of employee records in the store.",
		}),
		SnapshotDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "employee_manager_snapshot_write_duration_seconds",
			Help:    "Duration of snapshot writes to disk.",
			Buckets: prometheus.DefBuckets,
		}),
		SnapshotFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "employee_manager_snapshot_failures_total",
			Help: "Total snapshot writes that failed.",
		}),
	}

	for _, op := range []string{"add", "update", "delete", "bulk_delete"} {
		m.Mutations.WithLabelValues(op)
	}

	return m
}
