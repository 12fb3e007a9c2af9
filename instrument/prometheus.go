// SPDX-License-Identifier: MIT

package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names exported by PrometheusReporter.
const (
	MetricDuration = "algokit_operation_duration_seconds"
	MetricErrors   = "algokit_operation_errors_total"
)

// PrometheusReporter records durations in a histogram labelled by operation
// and status ("ok" or "error"), and counts failed calls per operation.
type PrometheusReporter struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusReporter creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on the same registry
// panics, as with promauto.
func NewPrometheusReporter(reg prometheus.Registerer) *PrometheusReporter {
	factory := promauto.With(reg)

	return &PrometheusReporter{
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricDuration,
				Help:    "Wall-clock duration of instrumented algorithm calls",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs .. ~4s
			},
			[]string{"operation", "status"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricErrors,
				Help: "Total number of instrumented calls that returned an error",
			},
			[]string{"operation"},
		),
	}
}

// Report implements Reporter.
func (p *PrometheusReporter) Report(name string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		p.errors.WithLabelValues(name).Inc()
	}
	p.duration.WithLabelValues(name, status).Observe(elapsed.Seconds())
}
