package observability

import (
	"context"

	"github.com/nicocarlier/safe-env-lite/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by validation hooks.
type Metrics struct {
	validations *prometheus.CounterVec
	problems    *prometheus.CounterVec
	duration    prometheus.Histogram
	fields      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "safeenv_validations_total",
				Help: "Total number of validation passes by outcome",
			},
			[]string{"outcome"},
		),
		problems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "safeenv_problems_total",
				Help: "Total number of invalid variables by key and problem code",
			},
			[]string{"key", "code"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "safeenv_validation_duration_seconds",
				Help:    "Duration of validation passes",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		fields: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "safeenv_declared_variables",
				Help: "Number of variables declared by the last validated schema",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.validations, m.problems, m.duration, m.fields)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProblem: func(_ context.Context, e *domain.ProblemEvent) {
			m.problems.WithLabelValues(e.Problem.Key, string(e.Problem.Code)).Inc()
		},
		OnComplete: func(_ context.Context, e *domain.ValidationEvent) {
			outcome := "valid"
			if !e.Valid() {
				outcome = "invalid"
			}
			m.validations.WithLabelValues(outcome).Inc()
			m.duration.Observe(e.Duration.Seconds())
			m.fields.Set(float64(e.Fields))
		},
	}
}
