package types

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	// ErrKeyNotFound indicates an entity or item is absent from the matrix or index
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidN indicates a result-size cap is invalid (<=0)
	ErrInvalidN = errors.New("n must be positive")

	// ErrUnknownMetric indicates a metric name or value is not recognised
	ErrUnknownMetric = errors.New("unknown similarity metric")

	// ErrNilIndex indicates an item recommendation was requested without an index
	ErrNilIndex = errors.New("item index cannot be nil")

	// ErrUnsupportedStore indicates the requested store type does not exist
	ErrUnsupportedStore = errors.New("unsupported store type")

	// ErrNilStore indicates a nil store was supplied
	ErrNilStore = errors.New("store cannot be nil")

	// ErrIndexNotBuilt indicates item recommendations were requested before an index was built or loaded
	ErrIndexNotBuilt = errors.New("item index has not been built")
)

// KeyNotFound wraps ErrKeyNotFound with the missing identifier.
func KeyNotFound(kind string, key any) error {
	return fmt.Errorf("%w: %s %v", ErrKeyNotFound, kind, key)
}
