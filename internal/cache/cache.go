package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
)

// Cache memoizes rendered analysis bundles for a short TTL. The pipeline is a
// pure function of the fetched bars, so a cached bundle is indistinguishable
// from a recomputed one within its freshness window.
type Cache interface {
	// Get returns the cached bundle for the key, if present
	Get(ctx context.Context, key string) (*models.Bundle, bool, error)

	// Set stores the bundle under the key for the given TTL
	Set(ctx context.Context, key string, bundle *models.Bundle, ttl time.Duration) error

	// Close releases any underlying connections
	Close() error
}

// Key builds the cache key for one (symbol, timeframe) request
func Key(symbol, timeframeLabel string) string {
	return fmt.Sprintf("analysis:%s:%s", symbol, timeframeLabel)
}

// Noop is a Cache that stores nothing; used when caching is disabled
type Noop struct{}

// NewNoop creates a disabled cache
func NewNoop() *Noop {
	return &Noop{}
}

// Get always misses
func (n *Noop) Get(_ context.Context, _ string) (*models.Bundle, bool, error) {
	return nil, false, nil
}

// Set discards the bundle
func (n *Noop) Set(_ context.Context, _ string, _ *models.Bundle, _ time.Duration) error {
	return nil
}

// Close is a no-op
func (n *Noop) Close() error {
	return nil
}
