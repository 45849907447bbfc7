// Package metrics
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments exported on /metrics.
type Metrics struct {
	CrewCheckIns    prometheus.Counter
	CrewCheckOuts   prometheus.Counter
	RostersCreated  prometheus.Counter
	OperationErrors *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		CrewCheckIns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crew_checkins_total",
			Help:      "The total number of successful crew check-ins",
		}),
		CrewCheckOuts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crew_checkouts_total",
			Help:      "The total number of successful crew check-outs",
		}),
		RostersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rosters_created_total",
			Help:      "The total number of rosters created",
		}),
		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "The total number of failed operations",
		}, []string{"operation"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
