// Package config loads engine settings from defaults, an optional YAML file
// and COLLABFILTER_ environment variables, and converts them into engine options.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/botirk38/collabfilter/logging"
	"github.com/botirk38/collabfilter/options"
	"github.com/botirk38/collabfilter/types"
	"github.com/rs/zerolog"
)

// Config is the top-level configuration.
type Config struct {
	Engine  EngineConfig  `koanf:"engine"`
	Store   StoreConfig   `koanf:"store"`
	Logging LoggingConfig `koanf:"logging"`
}

// EngineConfig holds ranking and index build settings.
type EngineConfig struct {
	TopN      int    `koanf:"top_n"`
	Metric    string `koanf:"metric"`
	Neighbors int    `koanf:"neighbors"`
	Workers   int    `koanf:"workers"`
}

// StoreConfig selects and configures the item index store.
// An empty Type leaves the engine to create an in-memory store on first build.
type StoreConfig struct {
	Type       string        `koanf:"type"`
	Capacity   int           `koanf:"capacity"`
	TTL        time.Duration `koanf:"ttl"`
	URL        string        `koanf:"url"`
	Username   string        `koanf:"username"`
	Password   string        `koanf:"password"`
	Database   int           `koanf:"database"`
	Prefix     string        `koanf:"prefix"`
	MongoDB    string        `koanf:"mongo_database"`
	Collection string        `koanf:"collection"`
}

// LoggingConfig mirrors logging.Config without the writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Engine.TopN <= 0 {
		return fmt.Errorf("engine.top_n: %w", types.ErrInvalidN)
	}
	if c.Engine.Neighbors <= 0 {
		return fmt.Errorf("engine.neighbors: %w", types.ErrInvalidN)
	}
	if c.Engine.Workers <= 0 {
		return errors.New("engine.workers must be positive")
	}
	if _, err := types.ParseMetric(c.Engine.Metric); err != nil {
		return fmt.Errorf("engine.metric: %w", err)
	}

	switch types.StoreType(c.Store.Type) {
	case "", types.StoreLRU, types.StoreFIFO, types.StoreLFU:
	case types.StoreRedis, types.StoreMongo:
		if c.Store.URL == "" {
			return fmt.Errorf("store.url is required for %s store", c.Store.Type)
		}
	default:
		return fmt.Errorf("store.type %q: %w", c.Store.Type, types.ErrUnsupportedStore)
	}
	if c.Store.Capacity < 0 {
		return errors.New("store.capacity cannot be negative")
	}
	return nil
}

// Logger builds the configured zerolog logger.
func (c *Config) Logger() zerolog.Logger {
	return logging.New(logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
	})
}

// StoreOptions converts the store section into a types.StoreConfig.
func (c *Config) StoreOptions() types.StoreConfig {
	opts := map[string]any{}
	if c.Store.Prefix != "" {
		opts["prefix"] = c.Store.Prefix
	}
	if c.Store.MongoDB != "" {
		opts["database"] = c.Store.MongoDB
	}
	if c.Store.Collection != "" {
		opts["collection"] = c.Store.Collection
	}

	return types.StoreConfig{
		Capacity:         c.Store.Capacity,
		TTL:              c.Store.TTL,
		ConnectionString: c.Store.URL,
		Username:         c.Store.Username,
		Password:         c.Store.Password,
		Database:         c.Store.Database,
		Options:          opts,
	}
}

// Options converts cfg into engine options, logger included.
// The store, when configured, is opened by the returned option. An lru store
// without a capacity is left to the engine, which sizes it to the item count.
func Options[E, I cmp.Ordered](cfg *Config) ([]options.Option[E, I], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metric, err := types.ParseMetric(cfg.Engine.Metric)
	if err != nil {
		return nil, err
	}

	opts := []options.Option[E, I]{
		options.WithTopN[E, I](cfg.Engine.TopN),
		options.WithMetric[E, I](metric),
		options.WithNeighbors[E, I](cfg.Engine.Neighbors),
		options.WithWorkers[E, I](cfg.Engine.Workers),
		options.WithLogger[E, I](cfg.Logger()),
	}
	if cfg.Store.Type == string(types.StoreLRU) && cfg.Store.Capacity == 0 {
		return opts, nil
	}
	if cfg.Store.Type != "" {
		opts = append(opts, options.WithStore[E, I](types.StoreType(cfg.Store.Type), cfg.StoreOptions()))
	}
	return opts, nil
}
