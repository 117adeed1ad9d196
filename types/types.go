// Package types holds the data model shared by the similarity, ranking and
// recommender packages, plus the storage contracts for item similarity indexes.
package types

import (
	"cmp"
	"context"
	"time"
)

// PreferenceMatrix maps an entity to the items it has rated.
// Inner maps are sparse: only rated items are present.
type PreferenceMatrix[E, I cmp.Ordered] map[E]map[I]float64

// Match is a scored identifier produced by a similarity ranking.
type Match[K cmp.Ordered] struct {
	Score float64 `json:"score" bson:"score"`
	ID    K       `json:"id" bson:"id"`
}

// MatchList is sorted by descending score.
type MatchList[K cmp.Ordered] []Match[K]

// Recommendation is a predicted rating for an item.
type Recommendation[I cmp.Ordered] struct {
	Score float64 `json:"score"`
	Item  I       `json:"item"`
}

// Ranking is sorted by descending predicted score.
type Ranking[I cmp.Ordered] []Recommendation[I]

// ItemIndex maps every item to its most similar items.
type ItemIndex[I cmp.Ordered] map[I]MatchList[I]

// ProgressFunc is called while an item index is built.
// done counts finished items out of total.
type ProgressFunc func(done, total int)

// IndexStore defines the interface for holding a precomputed item index
// between recommendation calls. Implementations include in-memory and remote stores.
type IndexStore[I cmp.Ordered] interface {
	// Put stores the neighbour list for an item
	Put(ctx context.Context, item I, matches MatchList[I]) error

	// Get retrieves the neighbour list for an item
	Get(ctx context.Context, item I) (MatchList[I], bool, error)

	// Delete removes an item
	Delete(ctx context.Context, item I) error

	// Contains checks if an item exists without retrieving its neighbours
	Contains(ctx context.Context, item I) (bool, error)

	// Flush clears all entries from the store
	Flush(ctx context.Context) error

	// Len returns the number of items in the store
	Len(ctx context.Context) (int, error)

	// Keys returns all items in the store
	Keys(ctx context.Context) ([]I, error)

	// Close closes the store and releases resources
	Close() error
}

// StoreConfig provides configuration options for index stores
type StoreConfig struct {
	// For in-memory stores
	Capacity int
	TTL      time.Duration

	// For Redis and MongoDB
	ConnectionString string
	Username         string
	Password         string
	Database         int

	// Additional options
	Options map[string]any
}

// StoreType represents the type of index store
type StoreType string

const (
	StoreLRU   StoreType = "lru"
	StoreFIFO  StoreType = "fifo"
	StoreLFU   StoreType = "lfu"
	StoreRedis StoreType = "redis"
	StoreMongo StoreType = "mongo"
)
