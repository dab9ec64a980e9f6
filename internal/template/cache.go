package template

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// cacheKey identifies one template source: its name plus a hash of its text,
// so a source edited on disk is parsed afresh under the same name.
type cacheKey struct {
	name string
	sum  uint64
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%s#%016x", k.name, k.sum)
}

// Cache memoizes parsed templates. Entries are populated once and then only
// read; concurrent first requests for the same source share a single Parse.
// Parse failures are not cached.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Template
	group   singleflight.Group
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Template)}
}

// Get returns the parsed form of source, parsing it on first use.
func (c *Cache) Get(name, source string) (*Template, error) {
	key := cacheKey{name: name, sum: xxhash.Sum64String(source)}
	if t, ok := c.lookup(key); ok {
		return t, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		if t, ok := c.lookup(key); ok {
			return t, nil
		}
		t, err := Parse(name, source)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = t
		c.mu.Unlock()
		log.Debug("parsed template", "name", name, "hash", fmt.Sprintf("%016x", key.sum), "segments", len(t.Segments))
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Template), nil
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key cacheKey) (*Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[key]
	return t, ok
}
