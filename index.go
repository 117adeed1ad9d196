package collabfilter

import (
	"cmp"
	"context"
	"fmt"

	"github.com/botirk38/collabfilter/types"
)

// SaveIndex writes every neighbour list of index into store.
// Existing entries for other items are left in place.
func SaveIndex[I cmp.Ordered](ctx context.Context, store types.IndexStore[I], index types.ItemIndex[I]) error {
	if store == nil {
		return types.ErrNilStore
	}
	if index == nil {
		return types.ErrNilIndex
	}

	for item, matches := range index {
		if err := store.Put(ctx, item, matches); err != nil {
			return fmt.Errorf("failed to save neighbours of %v: %w", item, err)
		}
	}
	return nil
}

// LoadIndex reads every neighbour list held by store.
func LoadIndex[I cmp.Ordered](ctx context.Context, store types.IndexStore[I]) (types.ItemIndex[I], error) {
	if store == nil {
		return nil, types.ErrNilStore
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list index items: %w", err)
	}

	index := make(types.ItemIndex[I], len(keys))
	for _, item := range keys {
		matches, found, err := store.Get(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("failed to load neighbours of %v: %w", item, err)
		}
		// Evicted or expired between Keys and Get
		if !found {
			continue
		}
		index[item] = matches
	}
	return index, nil
}
