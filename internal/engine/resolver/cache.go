package resolver

import (
	"maps"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Cache remembers the most recent resolution keyed by a hash of its input.
// Watch loops re-resolve on every file event; unchanged inputs hit the cache.
type Cache struct {
	mu    sync.Mutex
	key   uint64
	valid bool
	value domain.Resolution
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Key hashes the input. It reports false if the input cannot be encoded.
func (c *Cache) Key(in Input) (uint64, bool) {
	data, err := yaml.Marshal(in)
	if err != nil {
		return 0, false
	}
	h := xxhash.New()
	_, _ = h.Write(data)
	return h.Sum64(), true
}

// Get returns a copy of the cached resolution for key.
func (c *Cache) Get(key uint64) (domain.Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid || c.key != key {
		return domain.Resolution{}, false
	}
	return copyResolution(c.value), true
}

// Put replaces the cached resolution.
func (c *Cache) Put(key uint64, res domain.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.value = copyResolution(res)
	c.valid = true
}

// Invalidate drops the cached resolution.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valid = false
	c.value = domain.Resolution{}
}

func copyResolution(res domain.Resolution) domain.Resolution {
	res.Colors = maps.Clone(res.Colors)
	return res
}
