package cache

import (
	"sync"
	"time"

	"airease-backend/internal/pkg/clock"
)

type entry[T any] struct {
	value  T
	expiry time.Time
}

// Memory is a TTL map. clone, when set, keeps callers from mutating cached values.
type Memory[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	clock   clock.Clock
	clone   func(T) T
}

func NewMemory[T any](ttl time.Duration, clk clock.Clock, clone func(T) T) *Memory[T] {
	return &Memory[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		clock:   clk,
		clone:   clone,
	}
}

func (c *Memory[T]) Get(key string) (T, bool) {
	var zero T
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	now := c.clock.Now()
	if !now.After(e.expiry) {
		return c.cloneValue(e.value), true
	}

	// A Set may have landed between the read and the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if now.After(cur.expiry) {
		delete(c.entries, key)
		return zero, false
	}
	return c.cloneValue(cur.value), true
}

func (c *Memory[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: c.cloneValue(value), expiry: c.clock.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Purge drops expired entries and returns how many were removed.
func (c *Memory[T]) Purge() int {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if now.After(e.expiry) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

func (c *Memory[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Memory[T]) cloneValue(value T) T {
	if c.clone == nil {
		return value
	}
	return c.clone(value)
}
