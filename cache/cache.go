// Package cache is the caller-side memoization store for generation
// results: an in-memory LRU keyed by caller cache keys, with optional
// SQLite persistence behind it. The pipeline consults it before calling
// the generator and populates it after; the pipeline itself never holds
// hidden state. Eviction is caller-controlled: LRU capacity plus explicit
// Delete/Purge.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/afaq-khan2000/auto-skeleton/skeleton"
)

// Cache is a key → GenerationResult store.
type Cache struct {
	mem    *lru.Cache[string, *skeleton.GenerationResult]
	store  Store
	logger *slog.Logger
}

// Option customises a Cache.
type Option func(*Cache)

// WithStore attaches a persistent backing store consulted on memory
// misses and written through on Put.
func WithStore(s Store) Option {
	return func(c *Cache) { c.store = s }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New creates a Cache holding at most capacity entries in memory.
func New(capacity int, opts ...Option) (*Cache, error) {
	if capacity <= 0 {
		capacity = 128
	}
	mem, err := lru.New[string, *skeleton.GenerationResult](capacity)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	c := &Cache{mem: mem, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the cached result for key, consulting the backing store on
// a memory miss.
func (c *Cache) Get(ctx context.Context, key string) (*skeleton.GenerationResult, bool) {
	if key == "" {
		return nil, false
	}
	if res, ok := c.mem.Get(key); ok {
		return res, true
	}
	if c.store == nil {
		return nil, false
	}
	res, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache: store get failed", "key", key, "error", err)
		return nil, false
	}
	if res == nil {
		return nil, false
	}
	c.mem.Add(key, res)
	return res, true
}

// Put stores a result under key, writing through to the backing store.
func (c *Cache) Put(ctx context.Context, key string, res *skeleton.GenerationResult) {
	if key == "" || res == nil {
		return
	}
	c.mem.Add(key, res)
	if c.store != nil {
		if err := c.store.Put(ctx, key, res); err != nil {
			c.logger.Warn("cache: store put failed", "key", key, "error", err)
		}
	}
}

// Delete removes one entry from memory and the backing store.
func (c *Cache) Delete(ctx context.Context, key string) {
	c.mem.Remove(key)
	if c.store != nil {
		if err := c.store.Delete(ctx, key); err != nil {
			c.logger.Warn("cache: store delete failed", "key", key, "error", err)
		}
	}
}

// Purge clears the in-memory layer. The backing store is untouched.
func (c *Cache) Purge() {
	c.mem.Purge()
}

// Len returns the number of in-memory entries.
func (c *Cache) Len() int {
	return c.mem.Len()
}
