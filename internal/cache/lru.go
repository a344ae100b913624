package cache

// entry is a cached value threaded on the recency list. Evicting the tail
// gives the key to drop from the map without a second lookup.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// recency orders entries from most (head) to least (tail) recently used.
// Not thread-safe; Cache holds its mutex around every call.
type recency[K comparable, V any] struct {
	head, tail *entry[K, V]
}

// touch moves e to the head, linking it first if it is not on the list.
func (r *recency[K, V]) touch(e *entry[K, V]) {
	if r.head == e {
		return
	}
	if e.prev != nil || r.tail == e {
		r.unlink(e)
	}
	e.next = r.head
	if r.head != nil {
		r.head.prev = e
	}
	r.head = e
	if r.tail == nil {
		r.tail = e
	}
}

// popTail unlinks and returns the least recently used entry, or nil.
func (r *recency[K, V]) popTail() *entry[K, V] {
	e := r.tail
	if e != nil {
		r.unlink(e)
	}
	return e
}

func (r *recency[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		r.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		r.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (r *recency[K, V]) reset() {
	r.head, r.tail = nil, nil
}
