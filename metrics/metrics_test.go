package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveBuild(time.Now().Add(-time.Second), 6)
	m.Progress(3, 6)
	m.Recommendation(KindUser)
	m.Recommendation(KindUser)
	m.Recommendation(KindItem)
	m.StoreError("put")

	if got := testutil.ToFloat64(m.IndexItems); got != 6 {
		t.Errorf("Expected 6 indexed items, got %f", got)
	}
	if got := testutil.ToFloat64(m.IndexProgress); got != 0.5 {
		t.Errorf("Expected progress 0.5, got %f", got)
	}
	if got := testutil.ToFloat64(m.Recommendations.WithLabelValues(KindUser)); got != 2 {
		t.Errorf("Expected 2 user recommendations, got %f", got)
	}
	if got := testutil.ToFloat64(m.StoreErrors.WithLabelValues("put")); got != 1 {
		t.Errorf("Expected 1 store error, got %f", got)
	}
	if n := testutil.CollectAndCount(m.IndexBuildDuration); n != 1 {
		t.Errorf("Expected one histogram, got %d", n)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	// All methods are no-ops on nil
	m.ObserveBuild(time.Now(), 1)
	m.Progress(1, 1)
	m.Recommendation(KindMatch)
	m.StoreError("get")
}
