package types

import (
	"fmt"
	"strings"
)

// Metric selects the similarity function used to compare two profiles.
type Metric int

const (
	MetricEuclidean Metric = iota + 1
	MetricManhattan
	MetricPearson
)

// String returns the metric name as accepted by ParseMetric.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricManhattan:
		return "manhattan"
	case MetricPearson:
		return "pearson"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	return m >= MetricEuclidean && m <= MetricPearson
}

// ParseMetric converts a metric name to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "distance":
		return MetricEuclidean, nil
	case "manhattan":
		return MetricManhattan, nil
	case "pearson":
		return MetricPearson, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
