// Package lru provides a fixed size cache with least-recently-used eviction.
//
// Cache keeps a map from key to entry next to a doubly linked list ordered
// by recency, so Get, Set and Remove are all O(1). Both Get and Set count
// as a use of the key; a key that was inserted and never touched again
// ages in insertion order. When a new key is Set on a full cache, the key
// at the back of the list is evicted first.
//
// Cache does no locking. Callers sharing one across goroutines must
// guard it with their own mutex.
package lru
