// Package metrics exposes Prometheus collectors for the oven service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "microwave"

// Operation results.
const (
	ResultTransition = "transition"
	ResultNoop       = "noop"
)

var (
	// OvenOperationsTotal counts applied operations by name and whether the
	// configuration changed.
	OvenOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oven_operations_total",
		Help:      "Total number of oven operations, by op and result (transition/noop).",
	}, []string{"op", "result"})

	// OvenMagnetronEnabled is 1 while the magnetron is on.
	OvenMagnetronEnabled = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "oven_magnetron_enabled",
		Help:      "Magnetron state (0=off, 1=on).",
	})

	// OvenTimeRemaining is the remaining cook time in ticks.
	OvenTimeRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "oven_time_remaining",
		Help:      "Remaining cook time in ticks.",
	})

	// OvenCookCompleteTotal counts heating cycles that ran down to zero.
	OvenCookCompleteTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "oven_cook_complete_total",
		Help:      "Total number of heating cycles that finished by countdown.",
	})

	// ConformanceRunsTotal counts conformance runs by implementation and result.
	ConformanceRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conformance_runs_total",
		Help:      "Total number of conformance runs, by implementation and result.",
	}, []string{"implementation", "result"})

	// ConformanceRunDuration observes how long a conformance run took.
	ConformanceRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "conformance_run_duration_seconds",
		Help:      "Duration of conformance runs in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"implementation"})
)

// RecordOperation counts one operation. changed selects the result label.
func RecordOperation(op string, changed bool) {
	result := ResultNoop
	if changed {
		result = ResultTransition
	}
	OvenOperationsTotal.WithLabelValues(op, result).Inc()
}

// SetOvenState publishes the observable outputs.
func SetOvenState(magnetron bool, timeRemain uint) {
	if magnetron {
		OvenMagnetronEnabled.Set(1)
	} else {
		OvenMagnetronEnabled.Set(0)
	}
	OvenTimeRemaining.Set(float64(timeRemain))
}

// RecordCookComplete counts a finished heating cycle.
func RecordCookComplete() {
	OvenCookCompleteTotal.Inc()
}

// RecordConformanceRun counts a run and observes its duration.
func RecordConformanceRun(implementation, result string, seconds float64) {
	ConformanceRunsTotal.WithLabelValues(implementation, result).Inc()
	ConformanceRunDuration.WithLabelValues(implementation).Observe(seconds)
}
