package inmemory

import (
	"cmp"
	"context"
	"sync"

	"github.com/botirk38/collabfilter/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUStore implements IndexStore using LRU eviction policy
type LRUStore[I cmp.Ordered] struct {
	mu    *sync.RWMutex
	cache *lru.Cache[I, types.MatchList[I]]
}

// NewLRUStore creates a new LRU store
func NewLRUStore[I cmp.Ordered](config types.StoreConfig) (*LRUStore[I], error) {
	lruCache, err := lru.New[I, types.MatchList[I]](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUStore[I]{
		mu:    &sync.RWMutex{},
		cache: lruCache,
	}, nil
}

// Put stores a neighbour list in the LRU cache
func (s *LRUStore[I]) Put(ctx context.Context, item I, matches types.MatchList[I]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Add(item, cloneMatches(matches))
	return nil
}

// Get retrieves a neighbour list from the LRU cache
func (s *LRUStore[I]) Get(ctx context.Context, item I) (types.MatchList[I], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if matches, ok := s.cache.Get(item); ok {
		return cloneMatches(matches), true, nil
	}
	return nil, false, nil
}

// Delete removes an item from the LRU cache
func (s *LRUStore[I]) Delete(ctx context.Context, item I) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(item)
	return nil
}

// Contains checks if an item exists in the LRU cache without affecting recency
func (s *LRUStore[I]) Contains(ctx context.Context, item I) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cache.Contains(item), nil
}

// Flush clears all entries from the LRU cache
func (s *LRUStore[I]) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Purge()
	return nil
}

// Len returns the number of items in the LRU cache
func (s *LRUStore[I]) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cache.Len(), nil
}

// Keys returns all items in the LRU cache, oldest first
func (s *LRUStore[I]) Keys(ctx context.Context) ([]I, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cache.Keys(), nil
}

// Close closes the LRU store (no-op for in-memory)
func (s *LRUStore[I]) Close() error {
	return nil
}

// cloneMatches keeps callers from mutating stored lists.
func cloneMatches[I cmp.Ordered](matches types.MatchList[I]) types.MatchList[I] {
	if matches == nil {
		return nil
	}
	out := make(types.MatchList[I], len(matches))
	copy(out, matches)
	return out
}
