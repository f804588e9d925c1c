package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tracker_query_duration_seconds",
		Help:    "Time spent answering a strategy query, including replay.",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy", "operation"})

	QueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_query_errors_total",
		Help: "Strategy queries that failed.",
	}, []string{"strategy", "operation"})

	DegradedLedgers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_degraded_ledger_total",
		Help: "Queries whose replay hit integrity violations or invalid legs.",
	}, []string{"strategy"})

	LegsReplayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_legs_replayed_total",
		Help: "Transaction legs replayed.",
	}, []string{"strategy"})

	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tracker_circuit_breaker_state",
		Help: "Circuit breaker state (0: closed, 1: half-open, 2: open).",
	}, []string{"name"})

	HttpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_http_requests_total",
		Help: "HTTP requests by route and status.",
	}, []string{"route", "method", "status"})
)
