package lru

// LRUCache is the interface for a fixed size LRU cache.
type LRUCache[K comparable, V any] interface {
	// Returns key's value from the cache and
	// updates the "recently used"-ness of the key. #value, isFound
	Get(key K) (value V, ok bool)

	// Adds or replaces a value and updates the "recently used"-ness of
	// the key. Evicts the oldest entry when a new key meets a full cache.
	Set(key K, value V)

	// Removes a key from the cache.
	Remove(key K)

	// Checks if a key exists in cache without updating the recent-ness.
	Contains(key K) (ok bool)

	// Returns a slice of the keys in the cache, from oldest to newest.
	Keys() []K

	// Returns the number of items in the cache.
	Len() int

	// Returns the maximum number of items the cache holds.
	Cap() int

	// Clears all cache entries.
	Purge()
}

var _ LRUCache[string, any] = (*Cache[string, any])(nil)
