package recommender

import (
	"cmp"

	"github.com/botirk38/collabfilter/ranking"
	"github.com/botirk38/collabfilter/types"
)

// tally is the running vote for one candidate item.
type tally struct {
	weighted float64
	simSum   float64
}

// accumulator folds similarity-weighted ratings into per-item tallies.
type accumulator[I cmp.Ordered] struct {
	tallies map[I]tally
}

func newAccumulator[I cmp.Ordered]() *accumulator[I] {
	return &accumulator[I]{tallies: make(map[I]tally)}
}

// add records one vote of rating for item, weighted by sim.
func (a *accumulator[I]) add(item I, sim, rating float64) {
	t := a.tallies[item]
	t.weighted += sim * rating
	t.simSum += sim
	a.tallies[item] = t
}

// ranking normalises every tally into a predicted rating.
// Items whose similarity sum is zero received no signal and are dropped.
func (a *accumulator[I]) ranking() types.Ranking[I] {
	result := make(types.Ranking[I], 0, len(a.tallies))
	for item, t := range a.tallies {
		if t.simSum == 0 {
			continue
		}
		result = append(result, types.Recommendation[I]{Score: t.weighted / t.simSum, Item: item})
	}
	ranking.SortRanking(result)
	return result
}
