// Package telemetry exposes Prometheus metrics and OpenTelemetry tracing for
// the workflow engine.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ivo "github.com/mif-gmao/gmao/internal/domain/intervention/valueobjects"
	nvo "github.com/mif-gmao/gmao/internal/domain/notification/valueobjects"
)

const namespace = "gmao"

// Metrics implements the observer interfaces of the use cases. A zero or
// disabled Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	transitions        *prometheus.CounterVec
	transitionDuration *prometheus.HistogramVec
	generationRuns     *prometheus.CounterVec
	generated          prometheus.Counter
	generationFailures prometheus.Counter
	generationDuration prometheus.Histogram
	notifications      *prometheus.CounterVec
}

func NewMetrics(enabled bool) *Metrics {
	if !enabled {
		return &Metrics{}
	}

	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "status_transitions_total",
				Help:      "Status change requests by source status, requested status and outcome.",
			},
			[]string{"from", "to", "outcome"},
		),
		transitionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "status_transition_duration_seconds",
				Help:      "Time spent applying a status change request.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		generationRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "planning_generation_runs_total",
				Help:      "Planning generation runs by result.",
			},
			[]string{"result"},
		),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preventive_interventions_generated_total",
			Help:      "Interventions created from plannings.",
		}),
		generationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "planning_generation_failures_total",
			Help:      "Plannings that failed to generate an intervention.",
		}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "planning_generation_duration_seconds",
			Help:      "Duration of planning generation runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notifications by type and delivery status.",
			},
			[]string{"type", "status"},
		),
	}

	registry.MustRegister(
		m.transitions,
		m.transitionDuration,
		m.generationRuns,
		m.generated,
		m.generationFailures,
		m.generationDuration,
		m.notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) enabled() bool {
	return m != nil && m.registry != nil
}

func (m *Metrics) ObserveTransition(from, to ivo.Status, outcome string, elapsed time.Duration) {
	if !m.enabled() {
		return
	}
	fromLabel := from.String()
	if fromLabel == "" {
		fromLabel = "unknown"
	}
	m.transitions.WithLabelValues(fromLabel, to.String(), outcome).Inc()
	m.transitionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveGeneration(created, _ int, failed int, elapsed time.Duration) {
	if !m.enabled() {
		return
	}
	result := "success"
	if failed > 0 {
		result = "partial_failure"
	}
	m.generationRuns.WithLabelValues(result).Inc()
	m.generated.Add(float64(created))
	m.generationFailures.Add(float64(failed))
	m.generationDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDelivery(kind nvo.NotificationType, status nvo.DeliveryStatus) {
	if !m.enabled() {
		return
	}
	m.notifications.WithLabelValues(kind.String(), status.String()).Inc()
}

// Registry is nil when metrics are disabled.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if !m.enabled() {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
