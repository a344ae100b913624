// Package cache provides a generic, thread-safe LRU cache with a soft limit.
//
// When an insertion pushes the cache past its limit, the least recently used
// entries are evicted until a quarter of the capacity is free again. Eviction
// happens in batches so that a cache hovering around its limit does not pay
// for an eviction on every insertion.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
