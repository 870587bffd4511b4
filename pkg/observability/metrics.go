package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by engine runs.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Steps    *prometheus.HistogramVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of machine runs by mode and halt reason",
			},
			[]string{"mode", "halt"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "turing_run_steps",
				Help:    "Number of transitions applied per run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"mode"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "turing_run_duration_seconds",
				Help:    "Wall time of machine runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.Duration)
	}
	return m
}

// Hooks returns lifecycle hooks that record every finished run.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunEnd: func(ctx context.Context, e *domain.RunEvent) {
			if e.Result == nil {
				return
			}
			mode := string(e.Mode)
			m.Runs.WithLabelValues(mode, string(e.Result.Halt)).Inc()
			m.Steps.WithLabelValues(mode).Observe(float64(e.Result.Steps))
			m.Duration.WithLabelValues(mode).Observe(e.Duration.Seconds())
		},
	}
}
