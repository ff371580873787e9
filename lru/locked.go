package lru

import "sync"

// Locked makes any Basic cache safe for concurrent use with a single
// mutex around the whole instance. The lock is deliberately coarse: Get
// mutates the recency order, so per-operation read locks would be unsound.
type Locked[K comparable, V any] struct {
	mu    sync.Mutex
	cache Basic[K, V]
}

// NewLocked wraps cache in a Locked. The wrapped cache must not be used
// directly afterwards.
func NewLocked[K comparable, V any](cache Basic[K, V]) *Locked[K, V] {
	return &Locked[K, V]{cache: cache}
}

// Get returns the value associated with the key and marks the key as the
// most recently used.
func (l *Locked[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cache.Get(key)
}

// Put adds the value under the key, evicting the least recently used entry
// if the cache is full.
func (l *Locked[K, V]) Put(key K, value V) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cache.Put(key, value)
}

// Len returns the number of entries currently stored in the cache.
func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cache.Len()
}
