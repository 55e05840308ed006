// SPDX-License-Identifier: MIT
package palettes

import (
	"sync"

	"github.com/thatcatcamp/palettekit/internal/colors"
)

// Cache memoizes Generate by config. It only saves work: a cleared or
// missing cache gives the same palettes. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[Config]Palette
	max     int
	hits    uint64
	misses  uint64
}

// NewCache returns a cache holding at most max palettes (0 means unbounded).
// When full it is cleared before the next insert.
func NewCache(max int) *Cache {
	return &Cache{entries: make(map[Config]Palette), max: max}
}

// Generate returns a clone of the cached palette for cfg, generating it on a miss.
func (c *Cache) Generate(cfg Config) Palette {
	cfg.BaseColor = colors.Value(cfg.BaseColor)
	c.mu.Lock()
	if p, ok := c.entries[cfg]; ok {
		c.hits++
		c.mu.Unlock()
		return p.Clone()
	}
	c.misses++
	c.mu.Unlock()

	p := Generate(cfg)

	c.mu.Lock()
	if c.max > 0 && len(c.entries) >= c.max {
		c.entries = make(map[Config]Palette)
	}
	c.entries[cfg] = p
	c.mu.Unlock()

	return p.Clone()
}

// Len returns the number of cached palettes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear drops every cached palette.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Config]Palette)
	c.mu.Unlock()
}
