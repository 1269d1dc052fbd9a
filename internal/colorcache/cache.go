// Package colorcache memoises CSS colour parsing.
//
// Style functions re-parse the same handful of colour strings every time a
// style is compiled. Cache keeps the parsed channels (and parse failures)
// keyed by the raw string, evicting the least recently used quarter when it
// grows past its soft limit.
//
// Cache is safe for concurrent use and must not be copied after creation.
package colorcache

import "sync"

// DefaultLimit is the soft limit used by New when limit <= 0.
const DefaultLimit = 512

// Entry is a memoised parse result.
type Entry struct {
	Channels [4]float64
	OK       bool
}

// Cache maps colour strings to parse results.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*slot
	limit   int
	tick    int64
}

type slot struct {
	entry Entry
	atime int64
}

// New creates a cache holding roughly limit entries.
func New(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Cache{
		entries: make(map[string]*slot),
		limit:   limit,
	}
}

// Lookup returns the cached result for s, parsing and storing it on a miss.
// parse runs under the lock, so concurrent misses on one key parse once.
func (c *Cache) Lookup(s string, parse func(string) ([4]float64, bool)) ([4]float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if sl, ok := c.entries[s]; ok {
		sl.atime = c.tick
		return sl.entry.Channels, sl.entry.OK
	}

	ch, ok := parse(s)
	c.entries[s] = &slot{entry: Entry{Channels: ch, OK: ok}, atime: c.tick}
	if len(c.entries) > c.limit {
		c.evict()
	}
	return ch, ok
}

// Len returns the number of cached colours.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*slot)
	c.tick = 0
}

// evict removes the oldest entries until three quarters of the limit remain.
// Caller must hold c.mu.
func (c *Cache) evict() {
	target := c.limit * 3 / 4
	if target < 1 {
		target = 1
	}
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		key   string
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, sl := range c.entries {
		all = append(all, aged{key: k, atime: sl.atime})
	}

	// Partial selection sort: only the n oldest need ordering.
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[minIdx].atime {
				minIdx = j
			}
		}
		all[i], all[minIdx] = all[minIdx], all[i]
		delete(c.entries, all[i].key)
	}
}
