package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/config"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/pkg/logger"
)

// RedisCache implements the Cache interface on top of Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed bundle cache
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
	)

	return &RedisCache{client: rdb}, nil
}

// Get returns the cached bundle for the key, if present
func (r *RedisCache) Get(ctx context.Context, key string) (*models.Bundle, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	var bundle models.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		// A corrupt entry is treated as a miss so the pipeline recomputes it
		logger.Warn("Dropping unreadable cache entry",
			logger.ErrorField(err),
			logger.String("key", key),
		)
		return nil, false, nil
	}

	return &bundle, true, nil
}

// Set stores the bundle under the key for the given TTL
func (r *RedisCache) Set(ctx context.Context, key string, bundle *models.Bundle, ttl time.Duration) error {
	jsonData, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}

	return nil
}

// Close closes the Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}
