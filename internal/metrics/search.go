package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Engine implements the search and favorites recorders.
type Engine struct {
	filterDuration *prometheus.HistogramVec
	filterResults  *prometheus.HistogramVec
	topDuration    *prometheus.HistogramVec
	toggles        *prometheus.CounterVec
}

// NewEngine creates and registers engine metrics.
func NewEngine(reg prometheus.Registerer) *Engine {
	e := &Engine{
		filterDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "filter_duration_seconds",
				Help:      "Filter pipeline duration in seconds",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
			[]string{"catalog"},
		),
		filterResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "filter_results",
				Help:      "Entries left after filtering",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
			},
			[]string{"catalog"},
		),
		topDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "top_local_duration_seconds",
				Help:      "Top-local selection duration in seconds",
				Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"catalog"},
		),
		toggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "favorites_toggles_total",
				Help:      "Favorites toggles by action",
			},
			[]string{"catalog", "action"},
		),
	}
	reg.MustRegister(e.filterDuration, e.filterResults, e.topDuration, e.toggles)
	return e
}

// ObserveFilter records one filter run.
func (e *Engine) ObserveFilter(catalog string, elapsed time.Duration, totalAfter int) {
	e.filterDuration.WithLabelValues(catalog).Observe(elapsed.Seconds())
	e.filterResults.WithLabelValues(catalog).Observe(float64(totalAfter))
}

// ObserveTopLocal records one top-local selection.
func (e *Engine) ObserveTopLocal(catalog string, elapsed time.Duration, _ int) {
	e.topDuration.WithLabelValues(catalog).Observe(elapsed.Seconds())
}

// ObserveToggle counts a favorites toggle.
func (e *Engine) ObserveToggle(catalog, action string) {
	e.toggles.WithLabelValues(catalog, action).Inc()
}
