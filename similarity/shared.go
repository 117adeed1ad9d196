package similarity

import (
	"cmp"
	"slices"

	"github.com/botirk38/collabfilter/types"
	"github.com/samber/lo"
)

// SharedItems returns the items rated by both p1 and p2, in ascending order.
func SharedItems[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], p1, p2 E) ([]I, error) {
	_, _, shared, err := sharedRatings(prefs, p1, p2)
	return shared, err
}

// sharedRatings looks up both profiles and their common items.
// Items are sorted so every metric sums in the same order for (p1, p2) and (p2, p1).
func sharedRatings[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], p1, p2 E) (map[I]float64, map[I]float64, []I, error) {
	r1, err := prefs.Ratings(p1)
	if err != nil {
		return nil, nil, nil, err
	}
	r2, err := prefs.Ratings(p2)
	if err != nil {
		return nil, nil, nil, err
	}

	shared := lo.Filter(lo.Keys(r1), func(item I, _ int) bool {
		_, ok := r2[item]
		return ok
	})
	slices.Sort(shared)
	return r1, r2, shared, nil
}
