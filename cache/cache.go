// Package cache provides a small goroutine safe read-through cache.
package cache

import "sync"

type Cacheable[K comparable] interface {
	CacheKey() K
}

// Cache loads values with read on a miss and keeps them by their CacheKey.
type Cache[K comparable, V Cacheable[K]] struct {
	mu   sync.RWMutex
	data map[K]V
	read func(K) (V, error)
}

func NewCache[K comparable, V Cacheable[K]](read func(K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]V),
		read: read,
	}
}

// Get returns the value for key, loading it on a miss. Failed loads are not cached.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	v, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.read(key)
	if err != nil {
		var zero V
		return zero, err
	}

	k := v.CacheKey()
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.data[k]; ok {
		return cached, nil // loaded concurrently
	}
	c.data[k] = v
	return v, nil
}

// Len returns the number of cached values.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
