// Package observability provides Prometheus metrics for dataset loads and statistic groups.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Load metrics
	RowsLoaded   *prometheus.CounterVec
	LoadErrors   *prometheus.CounterVec
	LoadDuration *prometheus.HistogramVec

	// Filter metrics
	RowsAfterFilter *prometheus.GaugeVec

	// Statistic group metrics
	GroupDuration *prometheus.HistogramVec
	GroupsRun     *prometheus.CounterVec

	// Session metrics
	SessionsOpened prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates a Metrics instance registered on reg.
// A nil reg gets a fresh private registry, so tests can build many instances.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "bikeshare"
	}

	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if reg == nil {
		r := prometheus.NewRegistry()
		reg, gatherer = r, r
	} else if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	factory := promauto.With(reg)

	return &Metrics{
		RowsLoaded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows_loaded_total",
			Help:      "Total number of trip rows loaded per city",
		}, []string{"city"}),
		LoadErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "load_errors_total",
			Help:      "Total number of failed dataset loads per city",
		}, []string{"city"}),
		LoadDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "load_duration_seconds",
			Help:      "Time to read and parse a city dataset",
			Buckets:   []float64{.01, .05, .1, .5, 1, 2.5, 5, 10, 30},
		}, []string{"city"}),

		RowsAfterFilter: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows_after_filter",
			Help:      "Trips surviving the most recent filter per city",
		}, []string{"city"}),

		GroupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "stats",
			Name:      "group_duration_seconds",
			Help:      "Time to compute one statistic group",
			Buckets:   []float64{.0001, .001, .01, .05, .1, .5, 1, 5},
		}, []string{"group"}),
		GroupsRun: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stats",
			Name:      "groups_computed_total",
			Help:      "Total number of statistic groups computed",
		}, []string{"group"}),

		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "opened_total",
			Help:      "Total number of analysis sessions opened",
		}),

		gatherer: gatherer,
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveLoad records a successful load.
func (m *Metrics) ObserveLoad(city string, rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RowsLoaded.WithLabelValues(city).Add(float64(rows))
	m.LoadDuration.WithLabelValues(city).Observe(elapsed.Seconds())
}

// ObserveLoadError records a failed load.
func (m *Metrics) ObserveLoadError(city string) {
	if m == nil {
		return
	}
	m.LoadErrors.WithLabelValues(city).Inc()
}

// ObserveFilter records the number of trips left after filtering.
func (m *Metrics) ObserveFilter(city string, rows int) {
	if m == nil {
		return
	}
	m.RowsAfterFilter.WithLabelValues(city).Set(float64(rows))
}

// ObserveGroup records one statistic group computation.
func (m *Metrics) ObserveGroup(group string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GroupsRun.WithLabelValues(group).Inc()
	m.GroupDuration.WithLabelValues(group).Observe(elapsed.Seconds())
}

// SessionOpened increments the session counter.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.SessionsOpened.Inc()
}
