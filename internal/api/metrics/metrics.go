// Package metrics defines the Prometheus metrics for the forum request
// dispatcher. It is the single source of truth for metric names, labels,
// and help strings; registration happens implicitly via promauto against
// the default registry, which the ops server exposes on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forum"

// RequestsTotal counts completed requests.
// Labels:
//   - action: the resource/verb string from the request envelope, or
//     "malformed" when the envelope never decoded
//   - status: the numeric status written back (200, 400, 404, 500)
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of dispatcher requests, by action and response status.",
	},
	[]string{"action", "status"},
)

// RequestDuration measures request latency from accept to response written.
// Label:
//   - action: as in RequestsTotal
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of a request from connection accept to response written.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// OpenConnections tracks connections currently being served.
var OpenConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "open_connections",
		Help:      "Number of client connections currently open.",
	},
)
