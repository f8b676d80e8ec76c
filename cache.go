package lookup

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ProgramCache stores compiled expression programs keyed by expression
// strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// LRUCache is a bounded ProgramCache backed by hashicorp/golang-lru.
type LRUCache struct {
	inner *lru.Cache[string, any]
}

// NewLRUCache constructs a program cache holding at most size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	inner, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{inner: inner}, nil
}

// Get returns the cached program for key when present.
func (c *LRUCache) Get(key string) (any, bool) {
	if c == nil || c.inner == nil {
		return nil, false
	}
	return c.inner.Get(key)
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRUCache) Set(key string, value any) {
	if c == nil || c.inner == nil {
		return
	}
	c.inner.Add(key, value)
}

// Len reports the number of cached programs.
func (c *LRUCache) Len() int {
	if c == nil || c.inner == nil {
		return 0
	}
	return c.inner.Len()
}
