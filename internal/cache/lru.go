// Package cache provides the two memoization primitives the solver engine
// needs: a bounded LRU keyed by a derived value, and a single-slot memo for
// eliding repeated identical calls. Neither is concurrency-safe; callers own
// a cache instance per search so state never leaks across unrelated searches.
package cache

import "container/list"

// LRU is a bounded cache keyed by K holding values of type V. Capacity is
// enforced by evicting the least-recently-INSERTED entry, not the least-
// recently-read one: a Get does not move an entry's position in the
// eviction order. This is a deliberate departure from textbook LRU;
// recency updates on insertion only.
type LRU[K comparable, V any] struct {
	capacity int
	order    *list.List // front = most recently inserted, back = next to evict
	items    map[K]*list.Element
}

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a bounded LRU memo with the given capacity. Capacity must
// be at least 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	if el, ok := c.items[key]; ok {
		return el.Value.(*lruEntry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Put inserts or overwrites the value for key. If the key is new and the
// cache is at capacity, the oldest-inserted entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) {
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry[K, V]).value = value
		return
	}

	el := c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	c.items[key] = el

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry[K, V]).key)
		}
	}
}

// Len returns the number of entries currently cached.
func (c *LRU[K, V]) Len() int {
	return c.order.Len()
}

// Memoize wraps f so that repeated calls with arguments that hash to the
// same key (via keyFn) reuse the cached result instead of recomputing it.
func Memoize[A any, K comparable, V any](c *LRU[K, V], keyFn func(A) K, f func(A) V) func(A) V {
	return func(arg A) V {
		key := keyFn(arg)
		if v, ok := c.Get(key); ok {
			return v
		}
		v := f(arg)
		c.Put(key, v)
		return v
	}
}
