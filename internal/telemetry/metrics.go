package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"xbench/internal/benchmark"
)

// Metrics represents the collection of all Prometheus metrics.
type Metrics struct {
	ParsesTotal   *prometheus.CounterVec
	ParseDuration *prometheus.HistogramVec
	InputBytes    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.ParsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xbench_parses_total",
			Help: "Total number of timed parse invocations",
		},
		[]string{"parser", "outcome"},
	)

	m.ParseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xbench_parse_duration_seconds",
			Help:    "Duration of single parse invocations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"parser"},
	)

	m.InputBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "xbench_input_bytes",
			Help: "Size of the input buffer of the last run",
		},
	)

	reg.MustRegister(m.ParsesTotal, m.ParseDuration, m.InputBytes)
	return m
}

// ObserveRun records the samples of a completed run.
func (m *Metrics) ObserveRun(run *benchmark.Run) {
	m.InputBytes.Set(float64(run.InputBytes))
	for _, s := range run.Samples {
		outcome := "ok"
		if !s.OK {
			outcome = "error"
		}
		m.ParsesTotal.WithLabelValues(s.Parser, outcome).Inc()
		m.ParseDuration.WithLabelValues(s.Parser).Observe(float64(s.ElapsedNs) / 1e9)
	}
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics.
func StartMetricsServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())

	LogInfo("Starting metrics server", "port", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
