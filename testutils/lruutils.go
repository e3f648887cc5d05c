// Package testutils holds property checks shared by the cache tests.
package testutils

import (
	"reflect"
	"testing"

	lru "github.com/purintai/lru-cache"
)

// BasicTest fills an empty cache of the given capacity twice over and checks
// eviction, removal and ordering along the way.
func BasicTest(t *testing.T, l lru.LRUCache[int, int], capacity int) {
	t.Helper()

	// add twice as much the capacity to check if eviction occurs
	for i := 0; i < 2*capacity; i++ {
		l.Set(i, i)
		if l.Len() > capacity {
			t.Fatalf("len %v exceeds capacity %v", l.Len(), capacity)
		}
	}

	if l.Len() != capacity {
		t.Fatalf("bad len: %v", l.Len())
	}

	// cache should contain only the keys from capacity..2*capacity, anything before
	// that should have been evicted
	for i, k := range l.Keys() {
		if v, ok := l.Get(k); !ok || v != k || v != i+capacity {
			t.Fatalf("bad key: %v", k)
		}
	}

	for i := 0; i < capacity; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be evicted")
		}
	}

	for i := capacity; i < 2*capacity; i++ {
		if _, ok := l.Get(i); !ok {
			t.Fatalf("should not be evicted")
		}
	}

	// delete half the items from cache
	lastIndex := capacity + capacity/2
	for i := capacity; i < lastIndex; i++ {
		before := l.Len()
		l.Remove(i)
		if l.Len() != before-1 {
			t.Fatalf("remove of present key %v: len %v, want %v", i, l.Len(), before-1)
		}
		l.Remove(i)
		if l.Len() != before-1 {
			t.Fatalf("remove of absent key %v changed len to %v", i, l.Len())
		}
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be deleted")
		}
	}

	// this makes this item the most recently accessed; moved to the front
	l.Get(lastIndex)

	cacheLen := l.Len()
	if capacity-capacity/2 != cacheLen {
		t.Fatalf("invalid len. expected %v, got %v", capacity-capacity/2, cacheLen)
	}

	// Keys - returns items from oldest to newest.
	for i, k := range l.Keys() {
		// last item should be `lastIndex` and make sure the other items are ordered
		if (i == cacheLen-1 && k != lastIndex) || (i < cacheLen-1 && k != i+lastIndex+1) {
			t.Fatalf("out of order key: %v %v %v", i, k, cacheLen-1)
		}
	}

	l.Purge()
	if l.Len() != 0 {
		t.Fatalf("bad len: %v", l.Len())
	}

	// try to get the random item
	if _, ok := l.Get(2 * capacity); ok {
		t.Fatalf("should contain nothing")
	}
}

// SetTest checks that updating a present key neither grows the cache nor
// evicts, and that the first genuinely new key evicts exactly one entry.
func SetTest(t *testing.T, l lru.LRUCache[int, int], capacity int) {
	t.Helper()

	for i := 0; i < capacity; i++ {
		l.Set(i, i)
	}
	for i := 0; i < capacity; i++ {
		l.Set(i, i*10)
		if l.Len() != capacity {
			t.Fatalf("update of %v changed len to %v", i, l.Len())
		}
	}
	for i := 0; i < capacity; i++ {
		if v, ok := l.Get(i); !ok || v != i*10 {
			t.Fatalf("update of %v lost: %v, %v", i, v, ok)
		}
	}

	l.Set(capacity, capacity)
	if l.Len() != capacity {
		t.Fatalf("bad len: %v", l.Len())
	}
	missing := 0
	for i := 0; i < capacity; i++ {
		if !l.Contains(i) {
			missing++
		}
	}
	if missing != 1 {
		t.Fatalf("expected exactly one eviction, got %v", missing)
	}
	// Get walked 0..capacity-1 in order, so 0 was the oldest
	if l.Contains(0) {
		t.Errorf("0 should have been evicted")
	}
}

// ContainsTest checks that Contains leaves recency untouched.
func ContainsTest(t *testing.T, l lru.LRUCache[int, int], capacity int) {
	t.Helper()

	for i := 0; i < capacity; i++ {
		l.Set(i, i)
	}

	// contains should not update the recent-ness so this item will remain the oldest
	if !l.Contains(0) {
		t.Errorf("0 should be contained")
	}

	// oldest (0) should have been evicted
	l.Set(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("Contains should not have updated recent-ness of 0")
	}
}

// GetRefreshTest checks that Get protects the oldest key from the next
// eviction. capacity must be at least 2.
func GetRefreshTest(t *testing.T, l lru.LRUCache[int, int], capacity int) {
	t.Helper()
	if capacity < 2 {
		t.Fatalf("GetRefreshTest needs capacity >= 2, got %v", capacity)
	}

	for i := 0; i < capacity; i++ {
		l.Set(i, i)
	}
	if _, ok := l.Get(0); !ok {
		t.Fatalf("0 should be present")
	}

	l.Set(capacity, capacity)
	if !l.Contains(0) {
		t.Errorf("Get should have refreshed 0")
	}
	if l.Contains(1) {
		t.Errorf("1 should have been evicted")
	}

	want := make([]int, 0, capacity)
	for i := 2; i < capacity; i++ {
		want = append(want, i)
	}
	want = append(want, 0, capacity)
	if got := l.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("wrong keys got: %v, want: %v", got, want)
	}
}
