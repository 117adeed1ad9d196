package ranking

import (
	"cmp"

	"github.com/botirk38/collabfilter/similarity"
	"github.com/botirk38/collabfilter/types"
)

// TopMatches scores every other entity against id with metric and returns
// up to n matches sorted by descending similarity.
func TopMatches[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], id E, n int, metric types.Metric) (types.MatchList[E], error) {
	if n <= 0 {
		return nil, types.ErrInvalidN
	}
	if _, err := prefs.Ratings(id); err != nil {
		return nil, err
	}

	sim, err := similarity.For[E, I](metric)
	if err != nil {
		return nil, err
	}

	matches := make(types.MatchList[E], 0, len(prefs))
	for other := range prefs {
		if other == id {
			continue
		}
		score, err := sim(prefs, id, other)
		if err != nil {
			return nil, err
		}
		matches = append(matches, types.Match[E]{Score: score, ID: other})
	}

	SortMatches(matches)

	if len(matches) > n {
		return matches[:n], nil
	}
	return matches, nil
}
