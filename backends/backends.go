package backends

import (
	"cmp"

	"github.com/botirk38/collabfilter/backends/inmemory"
	"github.com/botirk38/collabfilter/backends/remote"
	"github.com/botirk38/collabfilter/types"
)

// ErrUnsupportedStore is returned for an unknown StoreType
var ErrUnsupportedStore = types.ErrUnsupportedStore

// StoreFactory creates index stores based on type and configuration
type StoreFactory[I cmp.Ordered] struct{}

// NewStore creates a new index store of the specified type
func (f *StoreFactory[I]) NewStore(storeType types.StoreType, config types.StoreConfig) (types.IndexStore[I], error) {
	switch storeType {
	case types.StoreLRU:
		return NewLRUStore[I](config)
	case types.StoreFIFO:
		return NewFIFOStore[I](config)
	case types.StoreLFU:
		return NewLFUStore[I](config)
	case types.StoreRedis:
		return NewRedisStore[I](config)
	case types.StoreMongo:
		return NewMongoStore[I](config)
	default:
		return nil, ErrUnsupportedStore
	}
}

// NewLRUStore creates a new LRU store
func NewLRUStore[I cmp.Ordered](config types.StoreConfig) (types.IndexStore[I], error) {
	return inmemory.NewLRUStore[I](config)
}

// NewFIFOStore creates a new FIFO store
func NewFIFOStore[I cmp.Ordered](config types.StoreConfig) (types.IndexStore[I], error) {
	return inmemory.NewFIFOStore[I](config)
}

// NewLFUStore creates a new LFU store
func NewLFUStore[I cmp.Ordered](config types.StoreConfig) (types.IndexStore[I], error) {
	return inmemory.NewLFUStore[I](config)
}

// NewRedisStore creates a new Redis store
func NewRedisStore[I cmp.Ordered](config types.StoreConfig) (types.IndexStore[I], error) {
	return remote.NewRedisStore[I](config)
}

// NewMongoStore creates a new MongoDB store
func NewMongoStore[I cmp.Ordered](config types.StoreConfig) (types.IndexStore[I], error) {
	return remote.NewMongoStore[I](config)
}
