// Package metrics defines the prometheus collectors shared by the clinic
// services. Collectors are registered on the default registry; each service
// exposes them on /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, route
	// pattern, and status class.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	// BillingRPCTotal counts billing provisioning calls by outcome
	// (ok, error, malformed).
	BillingRPCTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinic",
			Name:      "billing_rpc_total",
			Help:      "Total billing CreateBillingAccount calls, by outcome.",
		},
		[]string{"outcome"},
	)

	// BillingRPCDuration observes the round-trip latency of billing calls.
	// The billing call blocks the patient-create request for its full
	// duration, so this is the one latency that matters most.
	BillingRPCDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clinic",
			Name:      "billing_rpc_duration_seconds",
			Help:      "Round-trip latency of billing CreateBillingAccount calls.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
