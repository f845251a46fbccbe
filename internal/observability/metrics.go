// Package observability exposes Prometheus metrics for catalog serving.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contentcatalog"

// Metrics owns its registry so that servers and tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	// queries counts record queries. Labels: catalog, filtered (true, false)
	queries *prometheus.CounterVec
	// toggles counts selection transitions. Labels: catalog, result (expanded, collapsed)
	toggles *prometheus.CounterVec
	// loads counts catalog loads. Labels: status (success, error)
	loads *prometheus.CounterVec
	// catalogs is the number of catalogs being served.
	catalogs prometheus.Gauge
	// requestLatency measures HTTP handling time. Labels: method, route, status
	requestLatency *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "queries_total",
			Help:      "Record queries by catalog",
		}, []string{"catalog", "filtered"}),
		toggles: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "toggles_total",
			Help:      "Selection toggles by resulting state",
		}, []string{"catalog", "result"}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "loads_total",
			Help:      "Catalog loads and reloads by status",
		}, []string{"status"}),
		catalogs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "served",
			Help:      "Number of catalogs currently served",
		}),
		requestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveQuery(catalog string, filtered bool) {
	m.queries.WithLabelValues(catalog, strconv.FormatBool(filtered)).Inc()
}

func (m *Metrics) ObserveToggle(catalog string, expanded bool) {
	result := "collapsed"
	if expanded {
		result = "expanded"
	}
	m.toggles.WithLabelValues(catalog, result).Inc()
}

// ObserveLoad records a load attempt and, when it succeeded, the number of
// catalogs now served.
func (m *Metrics) ObserveLoad(served int, err error) {
	if err != nil {
		m.loads.WithLabelValues("error").Inc()
		return
	}
	m.loads.WithLabelValues("success").Inc()
	m.catalogs.Set(float64(served))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware times requests by their chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestLatency.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
