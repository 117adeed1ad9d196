package similarity

import (
	"cmp"
	"math"

	"github.com/botirk38/collabfilter/types"
)

// ManhattanSimilarity computes similarity based on Manhattan (L1) distance over shared items.
// Returns 1 / (1 + distance). Unlike EuclideanSimilarity there is no special case
// for an empty shared set, so profiles with nothing in common score 1.
func ManhattanSimilarity[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], p1, p2 E) (float64, error) {
	r1, r2, shared, err := sharedRatings(prefs, p1, p2)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, item := range shared {
		sum += math.Abs(r1[item] - r2[item])
	}

	return 1 / (1 + sum), nil
}
