package batch

import (
	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/cache"
)

// DefaultMemoSize is the soft limit of a Memo created with a non-positive
// size.
const DefaultMemoSize = 256

// Memo caches built polygons by key. Builds are deterministic, so a cached
// Poly equals the one a rebuild of the same configuration would produce.
//
// Cached polygons share their buffers between callers and must be treated
// as read-only.
//
// Memo is safe for concurrent use.
type Memo[K comparable] struct {
	polys *cache.Cache[K, shapes.Poly]
}

// MemoStats reports Memo usage.
type MemoStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewMemo creates a Memo holding about size polygons. Least recently used
// polygons are evicted first.
func NewMemo[K comparable](size int) *Memo[K] {
	if size <= 0 {
		size = DefaultMemoSize
	}
	return &Memo[K]{polys: cache.New[K, shapes.Poly](size)}
}

// Get returns the Poly stored under key. On a miss it calls newBuilder,
// builds the result and stores it. Failed builds are not stored.
func (m *Memo[K]) Get(key K, newBuilder func() shapes.Builder) (shapes.Poly, error) {
	return m.polys.GetOrCreate(key, func() (shapes.Poly, error) {
		return shapes.TryBuild(newBuilder())
	})
}

// Forget drops the Poly stored under key.
func (m *Memo[K]) Forget(key K) bool {
	return m.polys.Delete(key)
}

// Clear drops every stored Poly.
func (m *Memo[K]) Clear() {
	m.polys.Clear()
}

// Stats returns usage counters.
func (m *Memo[K]) Stats() MemoStats {
	s := m.polys.Stats()
	return MemoStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions}
}
