// Package metrics holds the prometheus collectors for recipe fetching.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	refresh  *prometheus.CounterVec
	held     prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recipefetch_http_requests_total",
			Help: "Requests sent to the recipe host, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recipefetch_http_request_duration_seconds",
			Help:    "Latency of requests to the recipe host.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		refresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recipefetch_refresh_total",
			Help: "List refreshes, by outcome.",
		}, []string{"outcome"}),
		held: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recipefetch_recipes_held",
			Help: "Recipes currently held by the list.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.refresh, m.held)
	return m
}

// ObserveRequest records one network request.
func (m *Metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveRefresh records one list refresh and the number of recipes held after it.
func (m *Metrics) ObserveRefresh(outcome string, held int) {
	if m == nil {
		return
	}
	m.refresh.WithLabelValues(outcome).Inc()
	m.held.Set(float64(held))
}
