package memory

import (
	"context"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]domain.Result
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]domain.Result),
	}
}

// Get retrieves a result from memory.
func (c *Cache) Get(ctx context.Context, key string) (domain.Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.data[key]
	if !ok {
		return domain.Result{}, domain.ErrCacheMiss
	}
	return res, nil
}

// Put stores a result in memory.
func (c *Cache) Put(ctx context.Context, key string, res domain.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = res
	return nil
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
