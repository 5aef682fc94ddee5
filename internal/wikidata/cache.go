package wikidata

import (
	"sync"

	"github.com/evgenyd/docs-metadata-enhancer/constants"
)

// LinkResult is a resolved link with its provenance. Confidence is 1.0 for
// type-verified or exact-label links and lower for best-effort fallbacks.
type LinkResult struct {
	QID        string
	Confidence float64
	Context    string
}

// LinkCache memoizes link outcomes for the lifetime of one worker process:
// successful links, negative results, and network failures so a known-bad
// lookup is not retried within the same run. Safe for concurrent use.
type LinkCache struct {
	mu       sync.Mutex
	hits     map[string]LinkResult
	misses   map[string]struct{}
	failures map[string]struct{}
}

func NewLinkCache() *LinkCache {
	return &LinkCache{
		hits:     make(map[string]LinkResult),
		misses:   make(map[string]struct{}),
		failures: make(map[string]struct{}),
	}
}

func cacheKey(name string, et constants.EntityType) string {
	return name + "|" + string(et)
}

// Get returns a cached successful link.
func (c *LinkCache) Get(name string, et constants.EntityType) (LinkResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.hits[cacheKey(name, et)]
	return r, ok
}

func (c *LinkCache) PutHit(name string, et constants.EntityType, r LinkResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[cacheKey(name, et)] = r
}

// HasMiss reports a cached negative result (searched, nothing found).
func (c *LinkCache) HasMiss(name string, et constants.EntityType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.misses[cacheKey(name, et)]
	return ok
}

func (c *LinkCache) PutMiss(name string, et constants.EntityType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses[cacheKey(name, et)] = struct{}{}
}

// HasFailure reports a cached transport failure for this lookup.
func (c *LinkCache) HasFailure(name string, et constants.EntityType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.failures[cacheKey(name, et)]
	return ok
}

func (c *LinkCache) PutFailure(name string, et constants.EntityType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[cacheKey(name, et)] = struct{}{}
}
