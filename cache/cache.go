package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL is the expiry used when no TTL is configured. It comfortably
// covers a single crawl session.
const DefaultTTL = 10 * time.Minute

// TTL is a concurrency-safe key-value cache with per-entry expiration.
// Set unconditionally overwrites; Get treats expired entries as absent.
// Same-key races are last-writer-wins.
type TTL[V any] struct {
	entries *expirable.LRU[string, V]
}

// NewTTL creates a cache whose entries expire ttl after insertion.
// A non-positive ttl falls back to DefaultTTL.
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	// Size 0 means unbounded; the cache only lives for one crawl session.
	return &TTL[V]{entries: expirable.NewLRU[string, V](0, nil, ttl)}
}

// Set stores value under key, stamping the insertion time.
// Any existing entry for key is overwritten unconditionally.
func (c *TTL[V]) Set(key string, value V) {
	c.entries.Add(key, value)
}

// Get returns the value stored under key if it is present and younger
// than the TTL. Expired or absent entries report ok == false.
func (c *TTL[V]) Get(key string) (V, bool) {
	return c.entries.Get(key)
}

// Len reports the number of live entries.
func (c *TTL[V]) Len() int {
	return c.entries.Len()
}
