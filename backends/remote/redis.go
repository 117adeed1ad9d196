package remote

import (
	"cmp"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/botirk38/collabfilter/types"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements IndexStore on a single Redis hash.
// Hash fields are JSON-encoded item identifiers so any ordered key type round-trips.
type RedisStore[I cmp.Ordered] struct {
	client *redis.Client
	prefix string
	hash   string
	ttl    time.Duration
}

// redisDocument represents a stored neighbour list
type redisDocument[I cmp.Ordered] struct {
	Item      I                  `json:"item"`
	Neighbors types.MatchList[I] `json:"neighbors"`
	Timestamp int64              `json:"timestamp"`
}

// parseRedisURL parses a Redis URL and returns redis.Options
func parseRedisURL(connectionString string) (*redis.Options, error) {
	// Handle redis:// or rediss:// URLs
	if strings.HasPrefix(connectionString, "redis://") || strings.HasPrefix(connectionString, "rediss://") {
		parsedURL, err := url.Parse(connectionString)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}

		opts := &redis.Options{
			Addr: parsedURL.Host,
		}

		if parsedURL.Scheme == "rediss" {
			opts.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}

		if parsedURL.User != nil {
			opts.Username = parsedURL.User.Username()
			if password, ok := parsedURL.User.Password(); ok {
				opts.Password = password
			}
		}

		// Database number comes from the path
		if parsedURL.Path != "" && parsedURL.Path != "/" {
			dbStr := strings.TrimPrefix(parsedURL.Path, "/")
			db, err := strconv.Atoi(dbStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Redis database %q: %w", dbStr, err)
			}
			opts.DB = db
		}

		return opts, nil
	}

	// For simple address format (host:port), return minimal options
	return &redis.Options{
		Addr: connectionString,
	}, nil
}

// NewRedisStore creates a new Redis store and checks the connection
func NewRedisStore[I cmp.Ordered](config types.StoreConfig) (*RedisStore[I], error) {
	opts, err := parseRedisURL(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	// Explicit config values win over the URL
	if config.Username != "" {
		opts.Username = config.Username
	}
	if config.Password != "" {
		opts.Password = config.Password
	}
	if config.Database != 0 {
		opts.DB = config.Database
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return newRedisStore[I](client, config), nil
}

func newRedisStore[I cmp.Ordered](client *redis.Client, config types.StoreConfig) *RedisStore[I] {
	prefix := "collabfilter:"
	if prefixOpt, ok := config.Options["prefix"]; ok {
		if p, ok := prefixOpt.(string); ok {
			prefix = p
		}
	}

	return &RedisStore[I]{
		client: client,
		prefix: prefix,
		hash:   prefix + "items",
		ttl:    config.TTL,
	}
}

// field converts an item to its hash field
func (s *RedisStore[I]) field(item I) (string, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("failed to encode item: %w", err)
	}
	return string(b), nil
}

// Put stores a neighbour list with HSET
func (s *RedisStore[I]) Put(ctx context.Context, item I, matches types.MatchList[I]) error {
	field, err := s.field(item)
	if err != nil {
		return err
	}

	doc, err := json.Marshal(redisDocument[I]{
		Item:      item,
		Neighbors: matches,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal neighbours: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.hash, field, doc)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.hash, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set neighbours in Redis: %w", err)
	}
	return nil
}

// Get retrieves a neighbour list with HGET
func (s *RedisStore[I]) Get(ctx context.Context, item I) (types.MatchList[I], bool, error) {
	field, err := s.field(item)
	if err != nil {
		return nil, false, err
	}

	result, err := s.client.HGet(ctx, s.hash, field).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get neighbours from Redis: %w", err)
	}

	var doc redisDocument[I]
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal neighbours: %w", err)
	}
	return doc.Neighbors, true, nil
}

// Delete removes an item from the hash
func (s *RedisStore[I]) Delete(ctx context.Context, item I) error {
	field, err := s.field(item)
	if err != nil {
		return err
	}

	if err := s.client.HDel(ctx, s.hash, field).Err(); err != nil {
		return fmt.Errorf("failed to delete neighbours from Redis: %w", err)
	}
	return nil
}

// Contains checks if an item exists in the hash
func (s *RedisStore[I]) Contains(ctx context.Context, item I) (bool, error) {
	field, err := s.field(item)
	if err != nil {
		return false, err
	}

	exists, err := s.client.HExists(ctx, s.hash, field).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check item existence in Redis: %w", err)
	}
	return exists, nil
}

// Flush drops the whole hash
func (s *RedisStore[I]) Flush(ctx context.Context) error {
	if err := s.client.Del(ctx, s.hash).Err(); err != nil {
		return fmt.Errorf("failed to flush Redis: %w", err)
	}
	return nil
}

// Len returns the number of items in the hash
func (s *RedisStore[I]) Len(ctx context.Context) (int, error) {
	n, err := s.client.HLen(ctx, s.hash).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count items in Redis: %w", err)
	}
	return int(n), nil
}

// Keys returns all items in the hash
func (s *RedisStore[I]) Keys(ctx context.Context) ([]I, error) {
	fields, err := s.client.HKeys(ctx, s.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get items from Redis: %w", err)
	}

	keys := make([]I, 0, len(fields))
	for _, field := range fields {
		var item I
		if err := json.Unmarshal([]byte(field), &item); err != nil {
			return nil, fmt.Errorf("failed to decode item %q: %w", field, err)
		}
		keys = append(keys, item)
	}
	return keys, nil
}

// Close closes the Redis connection
func (s *RedisStore[I]) Close() error {
	return s.client.Close()
}
