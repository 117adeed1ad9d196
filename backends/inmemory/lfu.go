package inmemory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/botirk38/collabfilter/types"
	"github.com/samber/lo"
)

// lfuEntry wraps a neighbour list with frequency tracking
type lfuEntry[I cmp.Ordered] struct {
	matches   types.MatchList[I]
	frequency int
	seq       uint64
}

// LFUStore implements IndexStore using LFU (Least Frequently Used) eviction policy.
// Ties on frequency evict the oldest insertion.
type LFUStore[I cmp.Ordered] struct {
	mu       *sync.RWMutex
	entries  map[I]*lfuEntry[I]
	capacity int
	seq      uint64
}

// NewLFUStore creates a new LFU store. A capacity <= 0 means unbounded.
func NewLFUStore[I cmp.Ordered](config types.StoreConfig) (*LFUStore[I], error) {
	return &LFUStore[I]{
		mu:       &sync.RWMutex{},
		entries:  make(map[I]*lfuEntry[I]),
		capacity: config.Capacity,
	}, nil
}

// Put stores a neighbour list in the LFU store
func (s *LFUStore[I]) Put(ctx context.Context, item I, matches types.MatchList[I]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Existing items keep their history
	if existing, exists := s.entries[item]; exists {
		existing.matches = cloneMatches(matches)
		existing.frequency++
		return nil
	}

	if s.capacity > 0 && len(s.entries) >= s.capacity {
		s.evictLFU()
	}

	s.seq++
	s.entries[item] = &lfuEntry[I]{
		matches:   cloneMatches(matches),
		frequency: 1,
		seq:       s.seq,
	}
	return nil
}

// evictLFU removes the least frequently used entry
func (s *LFUStore[I]) evictLFU() {
	var (
		victim I
		best   *lfuEntry[I]
	)
	for item, entry := range s.entries {
		if best == nil || entry.frequency < best.frequency ||
			(entry.frequency == best.frequency && entry.seq < best.seq) {
			victim, best = item, entry
		}
	}
	if best != nil {
		delete(s.entries, victim)
	}
}

// Get retrieves a neighbour list and increments its frequency
func (s *LFUStore[I]) Get(ctx context.Context, item I) (types.MatchList[I], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[item]; ok {
		entry.frequency++
		return cloneMatches(entry.matches), true, nil
	}
	return nil, false, nil
}

// Delete removes an item from the LFU store
func (s *LFUStore[I]) Delete(ctx context.Context, item I) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, item)
	return nil
}

// Contains checks if an item exists (without incrementing frequency)
func (s *LFUStore[I]) Contains(ctx context.Context, item I) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.entries[item]
	return exists, nil
}

// Flush clears all entries from the LFU store
func (s *LFUStore[I]) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[I]*lfuEntry[I])
	return nil
}

// Len returns the number of items in the LFU store
func (s *LFUStore[I]) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

// Keys returns all items in the LFU store, sorted
func (s *LFUStore[I]) Keys(ctx context.Context) ([]I, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := lo.Keys(s.entries)
	slices.Sort(keys)
	return keys, nil
}

// Close closes the LFU store (no-op for in-memory)
func (s *LFUStore[I]) Close() error {
	return nil
}
