// Package cache provides the in-memory TTL cache behind ports.Cache.
// Entries live until the TTL fixed at construction elapses or a mutation
// removes them explicitly.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTL is a thread-safe expiring cache. With size 0 the cache is bounded by
// TTL alone, which matches the service's two fixed keys plus one entry per
// recently read order.
type TTL struct {
	lru *expirable.LRU[string, any]
}

// NewTTL creates a cache whose entries expire ttl after being set.
func NewTTL(size int, ttl time.Duration) *TTL {
	return &TTL{
		lru: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

// Get returns the entry stored under key, or false on a miss or after the
// entry expired.
func (c *TTL) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, replacing any previous entry.
func (c *TTL) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Remove invalidates the entry under key. Removing an absent key is a no-op.
func (c *TTL) Remove(key string) {
	c.lru.Remove(key)
}
