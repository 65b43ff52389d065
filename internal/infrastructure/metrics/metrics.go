package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Each instance owns its registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	DonorsRegistered      prometheus.Counter
	DonorsDeleted         prometheus.Counter
	Conflicts             *prometheus.CounterVec
	DirectoryCacheLookups *prometheus.CounterVec
	HTTPRequests          *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		DonorsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "donor_registry_donors_registered_total",
			Help: "Total number of donor profiles registered",
		}),
		DonorsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "donor_registry_donors_deleted_total",
			Help: "Total number of donor profiles deleted",
		}),
		Conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donor_registry_conflicts_total",
			Help: "Writes rejected by a uniqueness constraint, by operation and field",
		}, []string{"operation", "field"}),
		DirectoryCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donor_registry_directory_cache_lookups_total",
			Help: "Directory cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "donor_registry_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "donor_registry_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// IncrementDonorsRegistered increments the registered donors counter by 1
func (m *Metrics) IncrementDonorsRegistered() {
	m.DonorsRegistered.Inc()
}

func (m *Metrics) IncrementDonorsDeleted() {
	m.DonorsDeleted.Inc()
}

// Operation labels for Conflicts.
const (
	OperationRegister = "register"
	OperationUpdate   = "update"
)

func (m *Metrics) IncrementConflict(operation, field string) {
	m.Conflicts.WithLabelValues(operation, field).Inc()
}

func (m *Metrics) ObserveCacheLookup(result string) {
	m.DirectoryCacheLookups.WithLabelValues(result).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
