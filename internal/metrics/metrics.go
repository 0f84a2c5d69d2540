// Package metrics provides Prometheus metrics for the NASHRA API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssistantRequestsTotal counts summary and briefing requests by outcome.
	AssistantRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nashra",
			Name:      "assistant_requests_total",
			Help:      "Total number of AI summary and briefing requests",
		},
		[]string{"operation", "outcome"},
	)

	// CacheHitsTotal counts requests answered from a cached result.
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nashra",
			Name:      "assistant_cache_hits_total",
			Help:      "Total number of requests served from the per-subject cache",
		},
		[]string{"operation"},
	)

	// LLMCallDuration measures outbound model calls.
	LLMCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nashra",
			Name:      "llm_call_duration_seconds",
			Help:      "Duration of outbound generation calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"provider", "operation"},
	)

	// StateTransitionsTotal counts request state changes.
	StateTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nashra",
			Name:      "request_state_transitions_total",
			Help:      "Total number of request state transitions",
		},
		[]string{"operation", "to"},
	)
)

// RecordRequest records the outcome of an assistant operation.
func RecordRequest(operation, outcome string) {
	AssistantRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordCacheHit records a request answered without calling the model.
func RecordCacheHit(operation string) {
	CacheHitsTotal.WithLabelValues(operation).Inc()
}

// RecordLLMCall records the duration of one model call.
func RecordLLMCall(provider, operation string, seconds float64) {
	LLMCallDuration.WithLabelValues(provider, operation).Observe(seconds)
}

// RecordTransition records a request state change.
func RecordTransition(operation, to string) {
	StateTransitionsTotal.WithLabelValues(operation, to).Inc()
}
