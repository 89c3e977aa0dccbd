// Package menucache provides a short-TTL read cache with explicit
// invalidate-on-write, used in front of the menu catalog to cut read
// traffic from order-entry terminals.
package menucache

import (
	"sync"
	"time"
)

// Cache holds one cached value of type T with a TTL. A write to the
// underlying store must call Invalidate before it is considered complete,
// so the next read reflects the write.
type Cache[T any] struct {
	mu        sync.RWMutex
	value     T
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// New creates a cache with the given TTL. The zero value of T is never
// served; Get reports a miss until Put is called.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl, now: time.Now}
}

// NewWithClock creates a cache with an injected clock, for tests.
func NewWithClock[T any](ttl time.Duration, now func() time.Time) *Cache[T] {
	return &Cache[T]{ttl: ttl, now: now}
}

// Get returns the cached value and whether it is still fresh.
func (c *Cache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.expiresAt.IsZero() || !c.now().Before(c.expiresAt) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Put stores a value and restarts the TTL.
func (c *Cache[T]) Put(value T) {
	c.mu.Lock()
	c.value = value
	c.expiresAt = c.now().Add(c.ttl)
	c.mu.Unlock()
}

// Invalidate drops the cached value. Synchronous: once it returns, Get
// misses until the next Put.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}
