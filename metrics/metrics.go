// Package metrics exposes Prometheus instrumentation for the engine:
// item index builds, recommendation requests and index store failures.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation kinds used as the "kind" label.
const (
	KindUser  = "user"
	KindItem  = "item"
	KindMatch = "match"
)

// Metrics holds the collectors registered for one engine.
type Metrics struct {
	IndexBuildDuration prometheus.Histogram
	IndexItems         prometheus.Counter
	IndexProgress      prometheus.Gauge
	Recommendations    *prometheus.CounterVec
	StoreErrors        *prometheus.CounterVec
}

// New registers the engine collectors on reg.
// Passing nil registers on prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		IndexBuildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "collabfilter_index_build_duration_seconds",
				Help:    "Duration of item similarity index builds in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		IndexItems: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "collabfilter_index_items_total",
				Help: "Total number of items whose neighbours were computed",
			},
		),
		IndexProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "collabfilter_index_build_progress_ratio",
				Help: "Fraction of items done in the current index build",
			},
		),
		Recommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collabfilter_recommendations_total",
				Help: "Total number of ranking requests served",
			},
			[]string{"kind"},
		),
		StoreErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collabfilter_store_errors_total",
				Help: "Total number of index store errors",
			},
			[]string{"op"},
		),
	}
}

// ObserveBuild records a finished index build of items items.
func (m *Metrics) ObserveBuild(start time.Time, items int) {
	if m == nil {
		return
	}
	m.IndexBuildDuration.Observe(time.Since(start).Seconds())
	m.IndexItems.Add(float64(items))
}

// Progress updates the progress gauge.
func (m *Metrics) Progress(done, total int) {
	if m == nil || total == 0 {
		return
	}
	m.IndexProgress.Set(float64(done) / float64(total))
}

// Recommendation counts a ranking request of kind.
func (m *Metrics) Recommendation(kind string) {
	if m == nil {
		return
	}
	m.Recommendations.WithLabelValues(kind).Inc()
}

// StoreError counts a failed store operation.
func (m *Metrics) StoreError(op string) {
	if m == nil {
		return
	}
	m.StoreErrors.WithLabelValues(op).Inc()
}
