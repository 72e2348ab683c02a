package pika

import "sync"

// DefaultCacheBuckets is the chained hash table's starting bucket count,
// matching the reference engine's pattern cache.
const DefaultCacheBuckets = 32

// CacheConfig tunes the pattern cache's bucket count.
type CacheConfig struct {
	Buckets int
}

// DefaultCacheConfig returns the reference bucket count.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Buckets: DefaultCacheBuckets}
}

// Validate rejects a non-positive bucket count.
func (c CacheConfig) Validate() error {
	if c.Buckets <= 0 {
		return &Error{Kind: InvalidConfig, Message: "Buckets must be > 0"}
	}
	return nil
}

// WithBuckets returns a copy of c with the given bucket count.
func (c CacheConfig) WithBuckets(n int) CacheConfig {
	c.Buckets = n
	return c
}

// cacheEntry is one node of a bucket's chain.
type cacheEntry struct {
	fingerprint uint64
	state       *State
	next        *cacheEntry
}

// PatternCache maps (pattern bytes, rule-table fingerprint) to a compiled
// State, so parsing the same input against the same grammar more than once
// reuses the earlier State instead of re-validating the rule table and
// re-allocating a memo table. It is a chained hash table rather than a Go
// map so Stats can report the bucket count the way the reference
// implementation's pattern cache does.
//
// The cache owns every State it hands out: two callers that Compile the
// same (pattern, rules) pair get the same *State back, so neither may call
// Free on it. Entries are only removed by Clear.
//
// Thread safety: all methods take the cache's RWMutex, mirroring the
// concurrency contract of the lazy DFA's state cache.
type PatternCache struct {
	mu      sync.RWMutex
	buckets []*cacheEntry
	entries int
}

// NewPatternCache builds an empty cache with cfg.Buckets buckets.
func NewPatternCache(cfg CacheConfig) *PatternCache {
	return &PatternCache{buckets: make([]*cacheEntry, cfg.Buckets)}
}

// Compile returns the State for pattern under rules, building and caching
// one on a miss. A hit returns the exact State built (and possibly already
// run) by an earlier Compile call for the same (pattern, rules) pair.
func (c *PatternCache) Compile(pattern []byte, rules []Rule) (*State, error) {
	fp := Fingerprint(pattern, rules)
	bucket := int(fp % uint64(len(c.buckets)))

	c.mu.RLock()
	for e := c.buckets[bucket]; e != nil; e = e.next {
		if e.fingerprint == fp {
			c.mu.RUnlock()
			return e.state, nil
		}
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for e := c.buckets[bucket]; e != nil; e = e.next {
		if e.fingerprint == fp {
			return e.state, nil
		}
	}

	s, err := New(pattern, rules)
	if err != nil {
		return nil, err
	}
	c.buckets[bucket] = &cacheEntry{fingerprint: fp, state: s, next: c.buckets[bucket]}
	c.entries++
	return s, nil
}

// Clear empties every bucket, resetting the cache to its initial state.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.buckets {
		c.buckets[i] = nil
	}
	c.entries = 0
}

// CacheStats reports the cache's entry and bucket counts.
type CacheStats struct {
	Entries int
	Buckets int
}

// Stats returns the cache's current entry and bucket counts.
func (c *PatternCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{Entries: c.entries, Buckets: len(c.buckets)}
}

// defaultCache is the process-wide pattern cache backing the package-level
// CompilePattern/PatternCacheClear/PatternCacheStats functions.
var defaultCache = NewPatternCache(DefaultCacheConfig())

// CompilePattern compiles pattern against rules through the process-wide
// pattern cache.
func CompilePattern(pattern []byte, rules []Rule) (*State, error) {
	return defaultCache.Compile(pattern, rules)
}

// PatternCacheClear empties the process-wide pattern cache.
func PatternCacheClear() {
	defaultCache.Clear()
}

// PatternCacheStats reports the process-wide pattern cache's statistics.
func PatternCacheStats() CacheStats {
	return defaultCache.Stats()
}
