package telemetry

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bikeshare"

// Metrics holds the explorer's prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	LoadsTotal     *prometheus.CounterVec
	LoadDuration   *prometheus.HistogramVec
	RowsLoaded     prometheus.Gauge
	ReportsTotal   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.LoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Total number of dataset loads",
		},
		[]string{"city", "outcome"},
	)

	m.LoadDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time spent reading and filtering trip files",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"city"},
	)

	m.RowsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rows_loaded",
			Help:      "Rows in the currently loaded trip table",
		},
	)

	m.ReportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Total number of reports shown",
		},
		[]string{"report"},
	)

	m.ReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Time spent computing a report",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"report"},
	)

	m.Registry.MustRegister(
		m.LoadsTotal,
		m.LoadDuration,
		m.RowsLoaded,
		m.ReportsTotal,
		m.ReportDuration,
	)
	return m
}

// ObserveLoad records one load attempt.
func (m *Metrics) ObserveLoad(city string, rows int, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.LoadsTotal.WithLabelValues(city, outcome).Inc()
	m.LoadDuration.WithLabelValues(city).Observe(elapsed.Seconds())
	if err == nil {
		m.RowsLoaded.Set(float64(rows))
	}
}

// ObserveReport records one computed report.
func (m *Metrics) ObserveReport(report string, elapsed time.Duration) {
	m.ReportsTotal.WithLabelValues(report).Inc()
	m.ReportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// StartMetricsServer serves /metrics on addr until the server fails.
func StartMetricsServer(addr string, m *Metrics) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
