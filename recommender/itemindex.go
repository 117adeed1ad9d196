package recommender

import (
	"cmp"
	"context"
	"sync"

	"github.com/botirk38/collabfilter/ranking"
	"github.com/botirk38/collabfilter/types"
	"golang.org/x/sync/errgroup"
)

// CalculateSimilarItems builds the item index: for every item, its n most
// similar items under Euclidean similarity over the transposed matrix.
// progress may be nil.
func CalculateSimilarItems[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], n int, progress types.ProgressFunc) (types.ItemIndex[I], error) {
	if n <= 0 {
		return nil, types.ErrInvalidN
	}

	itemPrefs := prefs.Transpose()
	items := itemPrefs.Entities()

	index := make(types.ItemIndex[I], len(items))
	for i, item := range items {
		matches, err := ranking.TopMatches(itemPrefs, item, n, types.MetricEuclidean)
		if err != nil {
			return nil, err
		}
		index[item] = matches

		if progress != nil {
			progress(i+1, len(items))
		}
	}

	return index, nil
}

// CalculateSimilarItemsParallel produces the same index as CalculateSimilarItems,
// spreading the per-item rankings over up to workers goroutines.
// progress calls are serialised and report a monotonically increasing count.
func CalculateSimilarItemsParallel[E, I cmp.Ordered](ctx context.Context, prefs types.PreferenceMatrix[E, I], n, workers int, progress types.ProgressFunc) (types.ItemIndex[I], error) {
	if n <= 0 {
		return nil, types.ErrInvalidN
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return CalculateSimilarItems(prefs, n, progress)
	}

	// The transposed matrix is finished before any worker reads it.
	itemPrefs := prefs.Transpose()
	items := itemPrefs.Entities()

	index := make(types.ItemIndex[I], len(items))
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matches, err := ranking.TopMatches(itemPrefs, item, n, types.MetricEuclidean)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			index[item] = matches
			done++
			if progress != nil {
				progress(done, len(items))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return index, nil
}
