package collabfilter

import (
	"cmp"
	"context"

	"github.com/botirk38/collabfilter/types"
)

// BuildIndexAsync builds and stores the item index in the background.
// Returns a channel that will receive an error or nil when complete.
func (e *Engine[E, I]) BuildIndexAsync(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		_, err := e.BuildItemIndex(ctx)
		errCh <- err
	}()
	return errCh
}

// RankingResult holds the result of an async recommendation.
type RankingResult[I cmp.Ordered] struct {
	Ranking types.Ranking[I]
	Error   error
}

// RecommendationsAsync runs Recommendations in the background.
func (e *Engine[E, I]) RecommendationsAsync(ctx context.Context, person E) <-chan RankingResult[I] {
	resultCh := make(chan RankingResult[I], 1)
	go func() {
		defer close(resultCh)
		if err := ctx.Err(); err != nil {
			resultCh <- RankingResult[I]{Error: err}
			return
		}
		ranking, err := e.Recommendations(person)
		resultCh <- RankingResult[I]{Ranking: ranking, Error: err}
	}()
	return resultCh
}

// RecommendedItemsAsync runs RecommendedItems in the background.
// Returns a channel that will receive the result when complete.
func (e *Engine[E, I]) RecommendedItemsAsync(ctx context.Context, user E) <-chan RankingResult[I] {
	resultCh := make(chan RankingResult[I], 1)
	go func() {
		defer close(resultCh)
		ranking, err := e.RecommendedItems(ctx, user)
		resultCh <- RankingResult[I]{Ranking: ranking, Error: err}
	}()
	return resultCh
}
