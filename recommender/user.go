// Package recommender predicts ratings for unrated items, either from
// similar entities (user-based) or from a precomputed item index (item-based).
package recommender

import (
	"cmp"

	"github.com/botirk38/collabfilter/similarity"
	"github.com/botirk38/collabfilter/types"
)

// GetRecommendations predicts ratings for the items person has not seen by
// averaging every other entity's ratings, weighted by its similarity to person.
//
// Entities with a similarity <= 0 are ignored. An item counts as unseen when
// person has no rating for it or has rated it exactly 0.
func GetRecommendations[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], person E, metric types.Metric) (types.Ranking[I], error) {
	mine, err := prefs.Ratings(person)
	if err != nil {
		return nil, err
	}

	sim, err := similarity.For[E, I](metric)
	if err != nil {
		return nil, err
	}

	acc := newAccumulator[I]()
	for _, other := range prefs.Entities() {
		if other == person {
			continue
		}

		score, err := sim(prefs, person, other)
		if err != nil {
			return nil, err
		}
		if score <= 0 {
			continue
		}

		for item, rating := range prefs[other] {
			if seen, ok := mine[item]; ok && seen != 0 {
				continue
			}
			acc.add(item, score, rating)
		}
	}

	return acc.ranking(), nil
}
