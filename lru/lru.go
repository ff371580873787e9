package lru

import (
	"errors"
	"fmt"
	"iter"

	"go.expect.digital/lrucache/internal/list"
)

// ErrCapacity reports a cache constructed with a non-positive capacity.
var ErrCapacity = errors.New("capacity must be positive")

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// Basic is the contract shared by every cache in this package. Put returns
// an error so that persistent implementations can report write failures;
// purely in-memory implementations always return nil.
type Basic[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V) error
	Len() int
}

// entry is the value carried by the recency list nodes. The key is kept
// here because eviction starts from the list side.
type entry[K comparable, V any] struct {
	key K
	val V
}

// Cache is a least recently used cache with a fixed capacity.
//
// It is not safe for concurrent use: an instance must be owned by a single
// goroutine, or wrapped in a Locked. Get is a mutating read, so even
// read-only sharing is unsound without external synchronization.
type Cache[K comparable, V any] struct {
	capacity int
	// order holds the resident entries from most recently used (front)
	// to least recently used (back). lookup maps every resident key to
	// its node in order; the two always hold the same key set.
	order  *list.List[entry[K, V]]
	lookup map[K]*list.Node[entry[K, V]]
}

// New creates a cache holding at most capacity entries. The capacity is
// fixed for the lifetime of the cache. A non-positive capacity returns an
// error wrapping ErrCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new cache with capacity %d: %w", capacity, ErrCapacity)
	}

	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New[entry[K, V]](),
		lookup:   make(map[K]*list.Node[entry[K, V]], capacity),
	}, nil
}

// Size returns the max number of entries the cache holds.
func (c *Cache[K, V]) Size() int {
	return c.capacity
}

// Len returns the number of entries currently stored in the cache.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.order.Len() == 0
}

// Get returns the value associated with the key and marks the key as the
// most recently used. A miss has no effect on the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	n, ok := c.lookup[key]
	if !ok {
		return zeroValue[V](), false
	}

	c.order.MoveToFront(n)

	return n.Value.val, true
}

// Peek returns the value associated with the key without updating its
// recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) { //nolint:ireturn
	n, ok := c.lookup[key]
	if !ok {
		return zeroValue[V](), false
	}

	return n.Value.val, true
}

// Contains reports whether the key is in the cache without updating its
// recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.lookup[key]
	return ok
}

// Put adds the value under the key and marks the key as the most recently
// used. If the key is already present, its value is replaced and the entry
// count does not change. If the key is new and the cache is full, the least
// recently used entry is evicted first, so Put grows the cache by at most
// one entry.
//
// Put never returns a non-nil error; the error is part of the Basic
// contract.
func (c *Cache[K, V]) Put(key K, value V) error {
	c.put(key, value)
	return nil
}

func (c *Cache[K, V]) put(key K, value V) {
	if n, ok := c.lookup[key]; ok {
		n.Value.val = value
		c.order.MoveToFront(n)

		return
	}

	if c.order.Len() == c.capacity {
		c.evict(c.order.Back())
	}

	c.lookup[key] = c.order.PushFront(entry[K, V]{key: key, val: value})
}

// Remove removes the key from the cache and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	n, ok := c.lookup[key]
	if !ok {
		return false
	}

	c.evict(n)

	return true
}

// evict removes the node from the recency order and its key from the lookup.
func (c *Cache[K, V]) evict(n *list.Node[entry[K, V]]) {
	c.order.Remove(n)
	delete(c.lookup, n.Value.key)
}

// Clear removes all entries. The capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.order = list.New[entry[K, V]]()
	clear(c.lookup)
}

// Keys returns the resident keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.Len())

	for n := c.order.Back(); n != nil; n = n.Prev() {
		keys = append(keys, n.Value.key)
	}

	return keys
}

// All returns an iterator over the entries from least to most recently
// used. The order is captured when ranging begins, so mutating the cache
// from inside the loop does not affect the pass in progress.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		entries := make([]entry[K, V], 0, c.order.Len())
		for n := c.order.Back(); n != nil; n = n.Prev() {
			entries = append(entries, n.Value)
		}

		for _, e := range entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
