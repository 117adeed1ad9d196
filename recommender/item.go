package recommender

import (
	"cmp"
	"slices"

	"github.com/botirk38/collabfilter/types"
	"github.com/samber/lo"
)

// GetRecommendedItems predicts ratings for the items user has not rated,
// using the neighbours stored in index for each item user did rate.
// index must contain every item user has rated.
func GetRecommendedItems[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], index types.ItemIndex[I], user E) (types.Ranking[I], error) {
	if index == nil {
		return nil, types.ErrNilIndex
	}

	ratings, err := prefs.Ratings(user)
	if err != nil {
		return nil, err
	}

	rated := lo.Keys(ratings)
	slices.Sort(rated)

	acc := newAccumulator[I]()
	for _, item := range rated {
		neighbours, ok := index[item]
		if !ok {
			return nil, types.KeyNotFound("item", item)
		}

		for _, m := range neighbours {
			if _, seen := ratings[m.ID]; seen {
				continue
			}
			acc.add(m.ID, m.Score, ratings[item])
		}
	}

	return acc.ranking(), nil
}
