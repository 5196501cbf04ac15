package solver

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/calcpath/bfs"
	"github.com/katalvlaran/calcpath/calc"
)

// Search outcomes, used as the "result" label.
const (
	outcomeSolved     = "solved"
	outcomeNoSolution = "no_solution"
	outcomeLimit      = "state_limit"
	outcomeCanceled   = "canceled"
	outcomeError      = "error"
)

// Metrics collects search statistics on its own registry. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	solves     *prometheus.CounterVec
	discovered prometheus.Histogram
	expanded   prometheus.Histogram
	presses    prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "calcpath",
			Subsystem: "solver",
			Name:      "searches_total",
			Help:      "Searches run, by result",
		}, []string{"result"}),
		discovered: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calcpath",
			Subsystem: "solver",
			Name:      "states_discovered",
			Help:      "Distinct states discovered per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calcpath",
			Subsystem: "solver",
			Name:      "states_expanded",
			Help:      "States expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		presses: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calcpath",
			Subsystem: "solver",
			Name:      "solution_presses",
			Help:      "Key presses in found solutions",
			Buckets:   prometheus.LinearBuckets(0, 1, 12),
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "calcpath",
			Subsystem: "solver",
			Name:      "search_duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Registry exposes the registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observe(result string, res *bfs.Result[calc.State], elapsed time.Duration) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
	if res == nil {
		return
	}
	m.discovered.Observe(float64(res.Discovered))
	m.expanded.Observe(float64(res.Expanded))
	if result == outcomeSolved {
		m.presses.Observe(float64(res.Len()))
	}
}

// WriteText writes every collected metric in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
