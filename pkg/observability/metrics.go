package observability

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors fed by dispatch hooks.
type Metrics struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	resolutions *prometheus.CounterVec
	logger      *slog.Logger
}

// NewMetrics registers the medcalc collectors on a private registry.
// logger may be nil.
func NewMetrics(logger *slog.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medcalc_calculator_runs_total",
				Help: "Total number of calculator runs by outcome",
			},
			[]string{"slug", "outcome"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "medcalc_calculator_run_duration_seconds",
				Help:    "Duration of calculator runs, post-processing included",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"slug"},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medcalc_resolutions_total",
				Help: "Implementation lookups by cache hit and result",
			},
			[]string{"cache_hit", "ok"},
		),
		logger: logger,
	}
	m.registry.MustRegister(m.runs, m.runDuration, m.resolutions)
	return m
}

// Hooks returns dispatch hooks that record into m.
func (m *Metrics) Hooks() domain.DispatchHooks {
	return domain.DispatchHooks{
		OnResolve: func(ctx context.Context, e *domain.ResolveEvent) {
			m.resolutions.WithLabelValues(strconv.FormatBool(e.CacheHit), strconv.FormatBool(e.Err == nil)).Inc()
			if e.Err != nil && m.logger != nil {
				m.logger.ErrorContext(ctx, "calculator resolution failed",
					"module", e.Module,
					"function", e.Function,
					"error", e.Err,
				)
			}
		},
		OnExecute: func(ctx context.Context, e *domain.ExecuteEvent) {
			m.runs.WithLabelValues(e.Slug, string(e.Outcome)).Inc()
			m.runDuration.WithLabelValues(e.Slug).Observe(e.Duration.Seconds())
			if m.logger != nil {
				m.logger.DebugContext(ctx, "calculator_run",
					"slug", e.Slug,
					"outcome", e.Outcome,
					"duration", e.Duration,
				)
			}
		},
	}
}

// Registry exposes the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
