package similarity

import (
	"cmp"
	"math"

	"github.com/botirk38/collabfilter/types"
	"gonum.org/v1/gonum/floats"
)

// PearsonSimilarity computes the Pearson correlation coefficient over shared items.
// Returns a value between -1 and 1, where 1 means perfect positive correlation.
// Returns 0 when there are no shared items or either profile has zero variance.
func PearsonSimilarity[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], p1, p2 E) (float64, error) {
	r1, r2, shared, err := sharedRatings(prefs, p1, p2)
	if err != nil {
		return 0, err
	}

	n := float64(len(shared))
	if n == 0 {
		return 0, nil
	}

	a := make([]float64, len(shared))
	b := make([]float64, len(shared))
	for i, item := range shared {
		a[i] = r1[item]
		b[i] = r2[item]
	}

	sum1, sum2 := floats.Sum(a), floats.Sum(b)
	sum1Sq, sum2Sq := floats.Dot(a, a), floats.Dot(b, b)
	pSum := floats.Dot(a, b)

	num := pSum - sum1*sum2/n
	den := math.Sqrt((sum1Sq - sum1*sum1/n) * (sum2Sq - sum2*sum2/n))
	if den == 0 || math.IsNaN(den) {
		return 0, nil
	}

	// rounding can push |r| a hair past 1
	return math.Max(-1, math.Min(1, num/den)), nil
}
