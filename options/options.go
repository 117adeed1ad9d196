// Package options provides functional options for configuring Engine instances.
package options

import (
	"cmp"
	"errors"

	"github.com/botirk38/collabfilter/backends"
	"github.com/botirk38/collabfilter/metrics"
	"github.com/botirk38/collabfilter/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Defaults applied by NewConfig
const (
	DefaultTopN      = 5
	DefaultMetric    = types.MetricPearson
	DefaultNeighbors = 10
	DefaultWorkers   = 1
)

// Option represents a configuration option for an Engine
type Option[E, I cmp.Ordered] func(*Config[E, I]) error

// Config holds the configuration for building an Engine
type Config[E, I cmp.Ordered] struct {
	// Store holds the item index between calls. Nil means an LRU store
	// sized to the item count is created on the first build.
	Store types.IndexStore[I]

	// TopN caps TopMatches results
	TopN int

	// Metric is used by TopMatches and user-based recommendations
	Metric types.Metric

	// Neighbors caps each item's neighbour list in the item index
	Neighbors int

	// Workers is the number of goroutines used to build the item index
	Workers int

	Progress types.ProgressFunc
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
}

// NewConfig creates a new configuration with default values
func NewConfig[E, I cmp.Ordered]() *Config[E, I] {
	return &Config[E, I]{
		TopN:      DefaultTopN,
		Metric:    DefaultMetric,
		Neighbors: DefaultNeighbors,
		Workers:   DefaultWorkers,
		Logger:    zerolog.Nop(),
	}
}

// Apply applies all the given options to the config
func (c *Config[E, I]) Apply(opts ...Option[E, I]) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config[E, I]) Validate() error {
	if c.TopN <= 0 {
		return errors.New("top n must be positive")
	}
	if c.Neighbors <= 0 {
		return errors.New("neighbors must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("workers must be positive")
	}
	if !c.Metric.Valid() {
		return types.ErrUnknownMetric
	}
	return nil
}

// WithTopN sets the number of matches returned by TopMatches
func WithTopN[E, I cmp.Ordered](n int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		if n <= 0 {
			return types.ErrInvalidN
		}
		cfg.TopN = n
		return nil
	}
}

// WithMetric sets the similarity metric for TopMatches and user-based recommendations
func WithMetric[E, I cmp.Ordered](metric types.Metric) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		if !metric.Valid() {
			return types.ErrUnknownMetric
		}
		cfg.Metric = metric
		return nil
	}
}

// WithNeighbors sets how many similar items are kept per item in the index
func WithNeighbors[E, I cmp.Ordered](n int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		if n <= 0 {
			return types.ErrInvalidN
		}
		cfg.Neighbors = n
		return nil
	}
}

// WithWorkers sets the number of goroutines used to build the item index
func WithWorkers[E, I cmp.Ordered](workers int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		if workers <= 0 {
			return errors.New("workers must be positive")
		}
		cfg.Workers = workers
		return nil
	}
}

// WithProgress sets an observer for item index builds
func WithProgress[E, I cmp.Ordered](progress types.ProgressFunc) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		cfg.Progress = progress
		return nil
	}
}

// WithLogger sets the engine logger
func WithLogger[E, I cmp.Ordered](logger zerolog.Logger) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		cfg.Logger = logger
		return nil
	}
}

// WithMetrics registers Prometheus collectors on reg
func WithMetrics[E, I cmp.Ordered](reg prometheus.Registerer) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		m, err := registerMetrics(reg)
		if err != nil {
			return err
		}
		cfg.Metrics = m
		return nil
	}
}

// registerMetrics turns promauto's registration panic into an error
func registerMetrics(reg prometheus.Registerer) (m *metrics.Metrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New("metrics registration failed")
		}
	}()
	return metrics.New(reg), nil
}

// WithLRUStore sets up an LRU in-memory index store
func WithLRUStore[E, I cmp.Ordered](capacity int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		store, err := backends.NewLRUStore[I](types.StoreConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithFIFOStore sets up a FIFO in-memory index store
func WithFIFOStore[E, I cmp.Ordered](capacity int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		store, err := backends.NewFIFOStore[I](types.StoreConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithLFUStore sets up an LFU in-memory index store
func WithLFUStore[E, I cmp.Ordered](capacity int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		store, err := backends.NewLFUStore[I](types.StoreConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithRedisStore sets up a Redis index store
func WithRedisStore[E, I cmp.Ordered](addr string, db int) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		store, err := backends.NewRedisStore[I](types.StoreConfig{
			ConnectionString: addr,
			Database:         db,
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithMongoStore sets up a MongoDB index store
func WithMongoStore[E, I cmp.Ordered](uri, database, collection string) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		store, err := backends.NewMongoStore[I](types.StoreConfig{
			ConnectionString: uri,
			Options: map[string]any{
				"database":   database,
				"collection": collection,
			},
		})
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithStore builds a store of storeType from config
func WithStore[E, I cmp.Ordered](storeType types.StoreType, config types.StoreConfig) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		factory := &backends.StoreFactory[I]{}
		store, err := factory.NewStore(storeType, config)
		if err != nil {
			return err
		}
		cfg.Store = store
		return nil
	}
}

// WithCustomStore allows using a pre-configured index store
func WithCustomStore[E, I cmp.Ordered](store types.IndexStore[I]) Option[E, I] {
	return func(cfg *Config[E, I]) error {
		if store == nil {
			return types.ErrNilStore
		}
		cfg.Store = store
		return nil
	}
}
