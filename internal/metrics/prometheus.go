package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for our service
type Metrics struct {
	// Request counters
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Business logic metrics
	AgentInvocations   *prometheus.CounterVec
	GenerationOutcomes *prometheus.CounterVec
	StoreOperations    *prometheus.CounterVec
	SnapshotOperations *prometheus.CounterVec
}

// Generation phases and outcomes used as label values.
const (
	PhaseContent = "content"
	PhaseVisuals = "visuals"

	OutcomeComplete = "complete"
	OutcomeDraft    = "draft"
	OutcomeFailed   = "failed"
)

// NewPrometheusMetrics creates and registers all Prometheus metrics
func NewPrometheusMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketflow_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketflow_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "marketflow_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
			[]string{"method", "endpoint"},
		),

		AgentInvocations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketflow_agent_invocations_total",
				Help: "Total number of agent invocations",
			},
			[]string{"agent_id", "outcome"},
		),

		GenerationOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketflow_generation_outcomes_total",
				Help: "Total number of generation runs by phase and outcome",
			},
			[]string{"phase", "outcome"},
		),

		StoreOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketflow_store_operations_total",
				Help: "Total number of campaign store operations",
			},
			[]string{"operation"},
		),

		SnapshotOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketflow_snapshot_operations_total",
				Help: "Total number of snapshot loads and saves by outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// RecordHTTPRequest records an HTTP request with its duration and status
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordAgentInvocation records one agent round-trip
func (m *Metrics) RecordAgentInvocation(agentID, outcome string) {
	m.AgentInvocations.WithLabelValues(agentID, outcome).Inc()
}

// RecordGeneration records a generation run outcome
func (m *Metrics) RecordGeneration(phase, outcome string) {
	m.GenerationOutcomes.WithLabelValues(phase, outcome).Inc()
}

// RecordStoreOperation records a campaign store operation
func (m *Metrics) RecordStoreOperation(operation string) {
	m.StoreOperations.WithLabelValues(operation).Inc()
}

// RecordSnapshotOperation records a snapshot load or save outcome
func (m *Metrics) RecordSnapshotOperation(operation, outcome string) {
	m.SnapshotOperations.WithLabelValues(operation, outcome).Inc()
}

// IncRequestsInFlight increments the in-flight requests counter
func (m *Metrics) IncRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Inc()
}

// DecRequestsInFlight decrements the in-flight requests counter
func (m *Metrics) DecRequestsInFlight(method, endpoint string) {
	m.HTTPRequestsInFlight.WithLabelValues(method, endpoint).Dec()
}
