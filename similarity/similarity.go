// Package similarity provides pairwise similarity scores between two rating profiles.
package similarity

import (
	"cmp"

	"github.com/botirk38/collabfilter/types"
)

// Func represents a function that computes similarity between two entities of a matrix.
// It should return a float64 where higher values indicate greater similarity.
type Func[E, I cmp.Ordered] func(prefs types.PreferenceMatrix[E, I], p1, p2 E) (float64, error)

// For returns the similarity function selected by metric.
func For[E, I cmp.Ordered](metric types.Metric) (Func[E, I], error) {
	switch metric {
	case types.MetricEuclidean:
		return EuclideanSimilarity[E, I], nil
	case types.MetricManhattan:
		return ManhattanSimilarity[E, I], nil
	case types.MetricPearson:
		return PearsonSimilarity[E, I], nil
	default:
		return nil, types.ErrUnknownMetric
	}
}

// Score computes the similarity of p1 and p2 under metric.
func Score[E, I cmp.Ordered](metric types.Metric, prefs types.PreferenceMatrix[E, I], p1, p2 E) (float64, error) {
	fn, err := For[E, I](metric)
	if err != nil {
		return 0, err
	}
	return fn(prefs, p1, p2)
}
