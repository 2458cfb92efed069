package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wxdeck_upstream_calls_total",
			Help: "Total upstream API calls",
		},
		[]string{"service", "endpoint", "status"},
	)

	UpstreamLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wxdeck_upstream_latency_seconds",
			Help:    "Upstream API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)

	GeocodeResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wxdeck_geocode_resolutions_total",
			Help: "Location resolutions by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wxdeck_cache_lookups_total",
			Help: "Response cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wxdeck_chat_requests_total",
			Help: "Chat collaborator requests by outcome",
		},
		[]string{"outcome"},
	)
)
