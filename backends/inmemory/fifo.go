package inmemory

import (
	"cmp"
	"context"
	"sync"

	"github.com/botirk38/collabfilter/types"
)

// FIFOStore implements IndexStore using FIFO (First In, First Out) eviction policy
type FIFOStore[I cmp.Ordered] struct {
	mu       *sync.RWMutex
	entries  map[I]types.MatchList[I]
	queue    []I
	capacity int
}

// NewFIFOStore creates a new FIFO store. A capacity <= 0 means unbounded.
func NewFIFOStore[I cmp.Ordered](config types.StoreConfig) (*FIFOStore[I], error) {
	return &FIFOStore[I]{
		mu:       &sync.RWMutex{},
		entries:  make(map[I]types.MatchList[I]),
		queue:    make([]I, 0, max(config.Capacity, 0)),
		capacity: config.Capacity,
	}, nil
}

// Put stores a neighbour list in the FIFO store
func (s *FIFOStore[I]) Put(ctx context.Context, item I, matches types.MatchList[I]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// If item already exists, update it in place
	if _, exists := s.entries[item]; exists {
		s.entries[item] = cloneMatches(matches)
		return nil
	}

	// If at capacity, evict the oldest entry
	if s.capacity > 0 && len(s.entries) >= s.capacity {
		oldest := s.queue[0]
		s.queue = s.queue[1:]
		delete(s.entries, oldest)
	}

	s.entries[item] = cloneMatches(matches)
	s.queue = append(s.queue, item)
	return nil
}

// Get retrieves a neighbour list from the FIFO store
func (s *FIFOStore[I]) Get(ctx context.Context, item I) (types.MatchList[I], bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if matches, ok := s.entries[item]; ok {
		return cloneMatches(matches), true, nil
	}
	return nil, false, nil
}

// Delete removes an item from the FIFO store
func (s *FIFOStore[I]) Delete(ctx context.Context, item I) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[item]; !exists {
		return nil
	}

	delete(s.entries, item)
	for i, queued := range s.queue {
		if queued == item {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
	return nil
}

// Contains checks if an item exists in the FIFO store
func (s *FIFOStore[I]) Contains(ctx context.Context, item I) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.entries[item]
	return exists, nil
}

// Flush clears all entries from the FIFO store
func (s *FIFOStore[I]) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[I]types.MatchList[I])
	s.queue = make([]I, 0, max(s.capacity, 0))
	return nil
}

// Len returns the number of items in the FIFO store
func (s *FIFOStore[I]) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

// Keys returns all items in insertion order
func (s *FIFOStore[I]) Keys(ctx context.Context) ([]I, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]I, len(s.queue))
	copy(keys, s.queue)
	return keys, nil
}

// Close closes the FIFO store (no-op for in-memory)
func (s *FIFOStore[I]) Close() error {
	return nil
}
