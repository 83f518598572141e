package analyses

import (
	"sync"
	"time"
)

// CacheTTL is how long a cached analysis short-circuits recomputation.
const CacheTTL = 5 * time.Minute

// CacheEntry pairs an analysis with the time it was stored.
type CacheEntry struct {
	Analysis  ResumeAnalysis
	Timestamp time.Time
}

// Cache is an in-memory, process-local analysis cache keyed by content
// fingerprint. It is a latency optimization only: entries past the TTL are
// ignored on read (not purged) and each process owns an independent instance.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]CacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCache constructs a Cache with the default TTL.
func NewCache() *Cache {
	return NewCacheWithClock(CacheTTL, nil)
}

// NewCacheWithClock constructs a Cache with an injectable clock for tests.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = CacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]CacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the live entry for key. A stale entry behaves as a miss.
func (c *Cache) Get(key string) (CacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return CacheEntry{}, false
	}
	if c.now().Sub(entry.Timestamp) > c.ttl {
		return CacheEntry{}, false
	}
	return entry, true
}

// Set inserts or overwrites the entry for key, stamping the current time.
func (c *Cache) Set(key string, analysis ResumeAnalysis) {
	c.mu.Lock()
	c.entries[key] = CacheEntry{Analysis: analysis, Timestamp: c.now()}
	c.mu.Unlock()
}
