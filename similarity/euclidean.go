package similarity

import (
	"cmp"
	"math"

	"github.com/botirk38/collabfilter/types"
)

// EuclideanSimilarity computes similarity based on Euclidean distance over shared items.
// Returns 1 / (1 + distance) to convert distance to similarity (higher = more similar).
// Profiles with no items in common score 0.
func EuclideanSimilarity[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], p1, p2 E) (float64, error) {
	r1, r2, shared, err := sharedRatings(prefs, p1, p2)
	if err != nil {
		return 0, err
	}
	if len(shared) == 0 {
		return 0, nil
	}

	var sum float64
	for _, item := range shared {
		diff := r1[item] - r2[item]
		sum += diff * diff
	}

	distance := math.Sqrt(sum)
	return 1 / (1 + distance), nil
}
