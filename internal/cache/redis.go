package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "garden:"

// Redis implements Cache on a Redis server. Each tag is a set holding the keys
// indexed by it.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to Redis and verifies the connection
func NewRedis(ctx context.Context, address, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, prefix: defaultPrefix}, nil
}

// WithPrefix returns a cache sharing the connection under another key prefix
func (r *Redis) WithPrefix(prefix string) *Redis {
	return &Redis{client: r.client, prefix: prefix}
}

func (r *Redis) entryKey(key string) string { return r.prefix + "page:" + key }
func (r *Redis) tagKey(tag string) string   { return r.prefix + "tag:" + tag }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.entryKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, tags []string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	entry := r.entryKey(key)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, entry, value, ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, r.tagKey(tag), entry)
			// Tag sets outlive their entries by at most one ttl
			pipe.Expire(ctx, r.tagKey(tag), 2*ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (r *Redis) InvalidateTags(ctx context.Context, tags ...string) (int, error) {
	removed := 0
	for _, tag := range tags {
		tagKey := r.tagKey(tag)
		keys, err := r.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to read tag %q: %w", tag, err)
		}

		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete entries for tag %q: %w", tag, err)
			}
			removed += int(n)
		}

		if err := r.client.Del(ctx, tagKey).Err(); err != nil {
			slog.Warn("failed to delete tag set", "tag", tag, "error", err)
		}
	}

	slog.Info("cache tags invalidated", "tags", tags, "entries_removed", removed)
	return removed, nil
}

// HealthCheck verifies Redis connectivity
func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}
