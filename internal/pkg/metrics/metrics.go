package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the dashboard collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	CallbacksTotal     *prometheus.CounterVec
	CallbackSeconds    *prometheus.HistogramVec
	HttpRequestsTotal  *prometheus.CounterVec
	HttpRequestSeconds *prometheus.HistogramVec
	DatasetRows        *prometheus.GaugeVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	metrics := &Metrics{
		registry: registry,
		CallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_callbacks_total",
				Help: "Dropdown change events dispatched, by input and outcome",
			},
			[]string{"input", "status"},
		),
		CallbackSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_callback_seconds",
				Help:    "Time spent recomputing the outputs bound to an input",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"input"},
		),
		HttpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_http_requests_total",
				Help: "HTTP requests served, by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HttpRequestSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_http_request_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DatasetRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_dataset_rows",
				Help: "Rows loaded per source table",
			},
			[]string{"table"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.CallbacksTotal,
		metrics.CallbackSeconds,
		metrics.HttpRequestsTotal,
		metrics.HttpRequestSeconds,
		metrics.DatasetRows,
	)

	return metrics
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveCallback(input string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.CallbacksTotal.WithLabelValues(input, status).Inc()
	m.CallbackSeconds.WithLabelValues(input).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HttpRequestSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetDatasetRows(table string, rows int) {
	if m == nil {
		return
	}
	m.DatasetRows.WithLabelValues(table).Set(float64(rows))
}
