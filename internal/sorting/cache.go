package sorting

import (
	"strconv"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
)

// DefaultCacheSize bounds the parse cache when no size is configured.
const DefaultCacheSize = 8192

// ParseCache memoises Parse results per (generation, raw string).
//
// The cache holds entries of a single generation at a time: storing under a
// newer generation, or resetting, flushes everything first, and stores under
// an older generation are dropped. When the entry count reaches the bound the
// whole cache is flushed.
type ParseCache struct {
	mu         sync.Mutex
	cache      *gocache.Cache
	max        int
	generation uint64
}

// NewParseCache returns a cache holding at most max entries. max <= 0
// disables caching.
func NewParseCache(max int) *ParseCache {
	return &ParseCache{
		cache: gocache.New(gocache.NoExpiration, 0),
		max:   max,
	}
}

// Get returns the cached parse of raw under generation gen.
func (c *ParseCache) Get(gen uint64, raw string) (ParsedClass, bool) {
	if c == nil || c.max <= 0 {
		return ParsedClass{}, false
	}

	v, found := c.cache.Get(cacheKey(gen, raw))
	if !found {
		return ParsedClass{}, false
	}

	pc, ok := v.(ParsedClass)
	if !ok {
		logger.Debug("parse cache: unexpected entry type %T for %q", v, raw)
		return ParsedClass{}, false
	}
	return pc, true
}

// Set stores pc for raw under generation gen.
func (c *ParseCache) Set(gen uint64, raw string, pc ParsedClass) {
	if c == nil || c.max <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case gen < c.generation:
		return // parsed under a snapshot that has since been replaced
	case gen > c.generation:
		c.flushLocked(gen)
	}
	if c.cache.ItemCount() >= c.max {
		logger.Debug("parse cache: bound of %d entries reached, flushing", c.max)
		c.cache.Flush()
	}

	c.cache.Set(cacheKey(gen, raw), pc, gocache.NoExpiration)
}

// Reset drops every entry and pins the cache to generation gen.
func (c *ParseCache) Reset(gen uint64) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushLocked(gen)
}

// Len returns the number of cached entries.
func (c *ParseCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.ItemCount()
}

func (c *ParseCache) flushLocked(gen uint64) {
	if c.cache.ItemCount() > 0 {
		logger.Debug("parse cache: generation %d -> %d, flushing %d entries", c.generation, gen, c.cache.ItemCount())
	}
	c.cache.Flush()
	c.generation = gen
}

func cacheKey(gen uint64, raw string) string {
	return strconv.FormatUint(gen, 36) + "\x00" + raw
}
