package types

import (
	"slices"

	"github.com/samber/lo"
)

// Ratings returns the ratings of id, or ErrKeyNotFound.
func (m PreferenceMatrix[E, I]) Ratings(id E) (map[I]float64, error) {
	ratings, ok := m[id]
	if !ok {
		return nil, KeyNotFound("entity", id)
	}
	return ratings, nil
}

// Entities returns all entity identifiers in ascending order.
func (m PreferenceMatrix[E, I]) Entities() []E {
	ids := lo.Keys(m)
	slices.Sort(ids)
	return ids
}

// Transpose swaps the roles of entities and items: result[item][entity] = rating.
// The receiver is left untouched.
func (m PreferenceMatrix[E, I]) Transpose() PreferenceMatrix[I, E] {
	result := make(PreferenceMatrix[I, E])
	for entity, ratings := range m {
		for item, rating := range ratings {
			row, ok := result[item]
			if !ok {
				row = make(map[E]float64)
				result[item] = row
			}
			row[entity] = rating
		}
	}
	return result
}
