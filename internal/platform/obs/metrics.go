package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationDuration tracks service and storage operations timed with Time.
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flights_operation_duration_seconds",
		Help:    "Duration of timed operations by name and outcome",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"operation", "outcome"})

	// ImportRecords counts airport import lines by outcome.
	ImportRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flights_import_records_total",
		Help: "Airport import records by outcome",
	}, []string{"outcome"})

	// ImportChunks counts airport import chunks by commit outcome.
	ImportChunks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flights_import_chunks_total",
		Help: "Airport import chunks by commit outcome",
	}, []string{"outcome"})

	// HTTPRequests counts served requests by route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flights_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flights_http_request_duration_seconds",
		Help:    "HTTP request duration by method and route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
