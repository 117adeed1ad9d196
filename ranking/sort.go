// Package ranking orders entities by similarity to a target entity.
package ranking

import (
	"cmp"
	"slices"

	"github.com/botirk38/collabfilter/types"
)

// SortMatches orders matches by descending score. Equal scores fall back to
// descending identifier, which is the ascending (score, id) order reversed.
func SortMatches[K cmp.Ordered](matches types.MatchList[K]) {
	slices.SortFunc(matches, func(a, b types.Match[K]) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// SortRanking applies the same ordering as SortMatches to predicted ratings.
func SortRanking[I cmp.Ordered](ranking types.Ranking[I]) {
	slices.SortFunc(ranking, func(a, b types.Recommendation[I]) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(b.Item, a.Item)
	})
}
