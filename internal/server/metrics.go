package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jianpu_transpose_requests_total",
			Help: "Transpose requests by response status code",
		}, []string{"code"},
	)

	requestLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jianpu_transpose_request_seconds",
			Help:    "Latency of transpose requests",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestLatency)
}
