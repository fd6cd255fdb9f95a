// Package metrics exposes the pipeline's Prometheus instrumentation:
// generation counters, per-stage duration histograms, and
// warning/error counters by kind.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Collector holds the pipeline metric families. Construct once per
// process with NewCollector and share across invocations.
type Collector struct {
	registry *prometheus.Registry

	generationsTotal *prometheus.CounterVec
	stageDuration    *prometheus.HistogramVec
	warningsTotal    *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	zonesPerModel    prometheus.Histogram
	idfBytesPerModel prometheus.Histogram
}

// NewCollector registers the pipeline metric families on a fresh
// registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		generationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idfgen_generations_total",
			Help: "Completed IDF generations by outcome",
		}, []string{"outcome"}),
		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idfgen_stage_duration_seconds",
			Help:    "Wall-clock duration of each pipeline stage",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"stage"}),
		warningsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idfgen_warnings_total",
			Help: "Validator warnings by code",
		}, []string{"code"}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "idfgen_errors_total",
			Help: "Pipeline errors by kind",
		}, []string{"kind"}),
		zonesPerModel: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idfgen_zones_per_model",
			Help:    "Zone count of generated models",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		idfBytesPerModel: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "idfgen_idf_bytes",
			Help:    "Size of emitted IDF text in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

// ObserveStage records one stage's duration.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	c.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// GenerationSucceeded records a successful run with its model size.
func (c *Collector) GenerationSucceeded(nZones, idfBytes int) {
	c.generationsTotal.WithLabelValues("success").Inc()
	c.zonesPerModel.Observe(float64(nZones))
	c.idfBytesPerModel.Observe(float64(idfBytes))
}

// GenerationFailed records a failed run by error kind.
func (c *Collector) GenerationFailed(kind string) {
	c.generationsTotal.WithLabelValues("failure").Inc()
	c.errorsTotal.WithLabelValues(kind).Inc()
}

// Warning records one validator warning.
func (c *Collector) Warning(code string) {
	c.warningsTotal.WithLabelValues(code).Inc()
}

// Serve exposes /metrics on the given port. Blocks; run in a
// goroutine.
func (c *Collector) Serve(port int, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	addr := fmt.Sprintf(":%d", port)
	logger.Info("serving metrics", zap.String("addr", addr))
	return http.ListenAndServe(addr, mux)
}
