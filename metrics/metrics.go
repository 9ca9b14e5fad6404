// Package metrics exposes dashboard activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements store.Observer on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	Decisions       *prometheus.CounterVec
	EventsAdded     prometheus.Counter
	Synthesized     prometheus.Counter
	Pending         prometheus.Gauge
	RefreshDuration *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smartstock_recommendation_decisions_total",
			Help: "Recommendations resolved, by outcome",
		}, []string{"outcome"}),
		EventsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartstock_events_added_total",
			Help: "Events added to the dashboard",
		}),
		Synthesized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smartstock_recommendations_synthesized_total",
			Help: "New recommendations created from events",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smartstock_pending_recommendations",
			Help: "Current pending recommendations counter",
		}),
		RefreshDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smartstock_refresh_duration_seconds",
			Help:    "Duration of dashboard refreshes",
			Buckets: prometheus.DefBuckets,
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "smartstock_http_requests_total",
			Help: "HTTP requests served, by method and status",
		}, []string{"method", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.Decisions,
		m.EventsAdded,
		m.Synthesized,
		m.Pending,
		m.RefreshDuration,
		m.HTTPRequests,
	)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecommendationsResolved(outcome string, n int) {
	m.Decisions.WithLabelValues(outcome).Add(float64(n))
}

func (m *Metrics) RecommendationsSynthesized(n int) {
	m.Synthesized.Add(float64(n))
}

func (m *Metrics) EventAdded() {
	m.EventsAdded.Inc()
}

func (m *Metrics) PendingChanged(pending int) {
	m.Pending.Set(float64(pending))
}

func (m *Metrics) RefreshFinished(elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.RefreshDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
