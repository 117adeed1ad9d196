package collabfilter

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/botirk38/collabfilter/backends"
	"github.com/botirk38/collabfilter/metrics"
	"github.com/botirk38/collabfilter/options"
	"github.com/botirk38/collabfilter/ranking"
	"github.com/botirk38/collabfilter/recommender"
	"github.com/botirk38/collabfilter/similarity"
	"github.com/botirk38/collabfilter/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Engine serves similarity rankings and recommendations over one preference matrix.
// The matrix is read, never written; callers must not modify it while the engine is in use.
type Engine[E, I cmp.Ordered] struct {
	mu    sync.RWMutex
	prefs types.PreferenceMatrix[E, I]
	store types.IndexStore[I]

	topN      int
	metric    types.Metric
	neighbors int
	workers   int
	progress  types.ProgressFunc
	logger    zerolog.Logger
	metrics   *metrics.Metrics
}

// New creates an Engine with functional options.
func New[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], opts ...options.Option[E, I]) (*Engine[E, I], error) {
	cfg := options.NewConfig[E, I]()

	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewEngine(prefs, cfg)
}

// NewEngine creates an Engine from an explicit configuration.
func NewEngine[E, I cmp.Ordered](prefs types.PreferenceMatrix[E, I], cfg *options.Config[E, I]) (*Engine[E, I], error) {
	if prefs == nil {
		return nil, errors.New("preferences cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine[E, I]{
		prefs:     prefs,
		store:     cfg.Store,
		topN:      cfg.TopN,
		metric:    cfg.Metric,
		neighbors: cfg.Neighbors,
		workers:   cfg.Workers,
		progress:  cfg.Progress,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}, nil
}

// Preferences returns the matrix the engine was built with.
func (e *Engine[E, I]) Preferences() types.PreferenceMatrix[E, I] {
	return e.prefs
}

// SharedItems returns the items rated by both a and b.
func (e *Engine[E, I]) SharedItems(a, b E) ([]I, error) {
	return similarity.SharedItems(e.prefs, a, b)
}

// Similarity scores a against b with the configured metric.
func (e *Engine[E, I]) Similarity(a, b E) (float64, error) {
	return similarity.Score(e.metric, e.prefs, a, b)
}

// SimilarityWith scores a against b with an explicit metric.
func (e *Engine[E, I]) SimilarityWith(metric types.Metric, a, b E) (float64, error) {
	return similarity.Score(metric, e.prefs, a, b)
}

// TopMatches returns the configured number of entities most similar to id.
func (e *Engine[E, I]) TopMatches(id E) (types.MatchList[E], error) {
	e.metrics.Recommendation(metrics.KindMatch)
	return ranking.TopMatches(e.prefs, id, e.topN, e.metric)
}

// Recommendations predicts ratings for person's unseen items from similar entities.
func (e *Engine[E, I]) Recommendations(person E) (types.Ranking[I], error) {
	e.metrics.Recommendation(metrics.KindUser)
	return recommender.GetRecommendations(e.prefs, person, e.metric)
}

// BuildItemIndex computes the item index, replaces the store contents with it
// and returns it.
func (e *Engine[E, I]) BuildItemIndex(ctx context.Context) (types.ItemIndex[I], error) {
	start := time.Now()
	e.logger.Info().
		Int("neighbors", e.neighbors).
		Int("workers", e.workers).
		Msg("building item index")

	index, err := recommender.CalculateSimilarItemsParallel(ctx, e.prefs, e.neighbors, e.workers, e.observe)
	if err != nil {
		e.logger.Error().Err(err).Msg("item index build failed")
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store == nil {
		store, err := backends.NewLRUStore[I](types.StoreConfig{Capacity: max(len(index), 1)})
		if err != nil {
			return nil, err
		}
		e.store = store
	}

	if err := e.store.Flush(ctx); err != nil {
		e.metrics.StoreError("flush")
		return nil, fmt.Errorf("failed to flush index store: %w", err)
	}
	if err := SaveIndex(ctx, e.store, index); err != nil {
		e.metrics.StoreError("put")
		e.logger.Warn().Err(err).Msg("failed to save item index")
		// A partial index must not be served as complete
		if ferr := e.store.Flush(ctx); ferr != nil {
			e.metrics.StoreError("flush")
			return nil, errors.Join(err, fmt.Errorf("failed to flush partial index: %w", ferr))
		}
		return nil, err
	}

	e.metrics.ObserveBuild(start, len(index))
	e.logger.Info().
		Int("items", len(index)).
		Dur("duration", time.Since(start)).
		Msg("item index built")
	return index, nil
}

// observe fans build progress out to the caller's observer and the metrics gauge.
func (e *Engine[E, I]) observe(done, total int) {
	e.metrics.Progress(done, total)
	if e.progress != nil {
		e.progress(done, total)
	}
}

// ItemIndex loads the whole item index from the store.
func (e *Engine[E, I]) ItemIndex(ctx context.Context) (types.ItemIndex[I], error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.store == nil {
		return nil, types.ErrIndexNotBuilt
	}
	index, err := LoadIndex(ctx, e.store)
	if err != nil {
		e.metrics.StoreError("load")
		return nil, err
	}
	if len(index) == 0 {
		return nil, types.ErrIndexNotBuilt
	}
	return index, nil
}

// RecommendedItems predicts ratings for user's unrated items from the stored item index.
// Only the neighbour lists of items user has rated are read from the store.
func (e *Engine[E, I]) RecommendedItems(ctx context.Context, user E) (types.Ranking[I], error) {
	e.metrics.Recommendation(metrics.KindItem)

	ratings, err := e.prefs.Ratings(user)
	if err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.store == nil {
		return nil, types.ErrIndexNotBuilt
	}
	n, err := e.store.Len(ctx)
	if err != nil {
		e.metrics.StoreError("len")
		return nil, err
	}
	if n == 0 {
		return nil, types.ErrIndexNotBuilt
	}

	rated := lo.Keys(ratings)
	slices.Sort(rated)

	partial := make(types.ItemIndex[I], len(rated))
	for _, item := range rated {
		matches, found, err := e.store.Get(ctx, item)
		if err != nil {
			e.metrics.StoreError("get")
			return nil, err
		}
		if found {
			partial[item] = matches
		}
	}

	return recommender.GetRecommendedItems(e.prefs, partial, user)
}

// Close closes the index store.
func (e *Engine[E, I]) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
