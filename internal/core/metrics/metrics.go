// Package metrics defines the Prometheus metrics exported by the gateway.
// All metrics are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweettracker"

// Outcome labels for UpstreamRequestsTotal.
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// UpstreamRequestsTotal counts calls to the tracking service.
// Labels:
//   - endpoint: upstream path (companylist, recommend, trackingInfo)
//   - outcome: success, transport_error or decode_error
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the tracking service.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures round-trip time of calls to the tracking service,
// including body decoding.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests sent to the tracking service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ShipmentStatusTotal counts normalized shipment statuses returned to callers.
var ShipmentStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipment_status_total",
		Help:      "Total number of tracking lookups, by normalized shipment status.",
	},
	[]string{"status"},
)
