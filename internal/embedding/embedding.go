// Package embedding defines the capability interface for text embedding
// providers and an advisory in-memory cache shared within a screening run.
package embedding

import (
	"context"
	"sync"
)

// Embedder produces a fixed-dimension vector representation of a text block.
// Implementations may block on network or local model inference; callers are
// expected to bound calls with a context deadline.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Cache wraps an Embedder and memoizes vectors by exact text content. It is
// advisory: a miss or eviction only costs another provider call, never
// correctness. Safe for concurrent use.
type Cache struct {
	inner Embedder

	mu      sync.RWMutex
	entries map[string][]float32
}

// NewCache wraps the provided embedder with memoization.
func NewCache(inner Embedder) *Cache {
	return &Cache{
		inner:   inner,
		entries: make(map[string][]float32),
	}
}

func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mu.RLock()
	vector, ok := c.entries[text]
	c.mu.RUnlock()
	if ok {
		return vector, nil
	}

	vector, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[text] = vector
	c.mu.Unlock()

	return vector, nil
}

// Len reports the number of cached vectors.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
