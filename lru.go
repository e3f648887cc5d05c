package lru

import (
	"errors"
	"fmt"

	"github.com/purintai/lru-cache/internal"
)

// DefaultSize is a conventional capacity for small caches.
const DefaultSize = 10

// ErrInvalidSize is returned by NewCache when the size is not positive.
var ErrInvalidSize = errors.New("must provide a positive size")

// Cache is a fixed size LRU cache. It is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	size      int
	evictList *internal.LruList[K, V]
	items     map[K]*internal.Entry[K, V]
}

// NewCache constructs an LRU of the given size.
func NewCache[K comparable, V any](size int) (*Cache[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("lru: size %d: %w", size, ErrInvalidSize)
	}
	c := &Cache[K, V]{
		size:      size,
		evictList: internal.NewList[K, V](),
		items:     make(map[K]*internal.Entry[K, V], size),
	}
	return c, nil
}

// Get looks up a key's value from the cache and marks the key as the most
// recently used.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		return ent.Value, true
	}
	return
}

// Set adds a value to the cache, or replaces the value of a key already
// present. Either way the key becomes the most recently used. Only a new
// key added to a full cache evicts, and it evicts the least recently used.
func (c *Cache[K, V]) Set(key K, value V) {
	// Check for existing item
	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)
		ent.Value = value
		return
	}

	// Make room before adding, so size never exceeds capacity
	if len(c.items) >= c.size {
		c.removeOldest()
	}
	c.items[key] = c.evictList.PushFront(key, value)
}

// Remove removes the provided key from the cache. Removing an absent key
// is a no-op.
func (c *Cache[K, V]) Remove(key K) {
	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
	}
}

// Contains checks if a key is in the cache, without updating the
// recent-ness.
func (c *Cache[K, V]) Contains(key K) (ok bool) {
	_, ok = c.items[key]
	return ok
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for ent := c.evictList.Back(); ent != nil; ent = ent.PrevEntry() {
		keys = append(keys, ent.Key)
	}
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, len(c.items))
	for ent := c.evictList.Back(); ent != nil; ent = ent.PrevEntry() {
		values = append(values, ent.Value)
	}
	return values
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity of the cache.
func (c *Cache[K, V]) Cap() int {
	return c.size
}

// Purge is used to completely clear the cache.
func (c *Cache[K, V]) Purge() {
	for k := range c.items {
		delete(c.items, k)
	}
	c.evictList.Init()
}

// removeOldest removes the oldest item from the cache.
func (c *Cache[K, V]) removeOldest() {
	if ent := c.evictList.Back(); ent != nil {
		c.removeElement(ent)
	}
}

// removeElement is used to remove a given list element from the cache
func (c *Cache[K, V]) removeElement(e *internal.Entry[K, V]) {
	c.evictList.Remove(e)
	delete(c.items, e.Key)
}
