package lru

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

var (
	// ErrStorage reports that the cache file could not be opened, read or
	// written.
	ErrStorage = errors.New("cache storage failed")

	// ErrParse reports that the cache file exists but does not hold a valid
	// entry document.
	ErrParse = errors.New("cache file is malformed")
)

// persistedEntry is the on-disk representation of a single cache entry.
// The file holds a JSON array of these, ordered from least to most
// recently used.
type persistedEntry[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// PersistentCache is a Cache whose contents survive process restarts.
//
// The cache state lives in a single file holding a JSON array of key/value
// pairs in ascending recency order. On construction the file is replayed
// through Put, so the file's trailing entries come back as the most
// recently used and entries beyond the capacity are evicted exactly as an
// ordinary Put sequence would evict them.
//
// Persistence is write-through: Put, Remove and Clear rewrite the file
// before returning. Get only reorders entries in memory and never writes,
// so the persisted recency order may lag the live one by the reads since
// the last mutation; Persist catches it up on demand. A write-through
// failure leaves the in-memory cache and the previous file contents
// intact.
//
// Like Cache, a PersistentCache is not safe for concurrent use.
type PersistentCache[K comparable, V any] struct {
	cache *Cache[K, V]
	path  string
}

// NewPersistent creates a persistent cache backed by the file at path. If
// the file does not exist, the cache starts empty and the file is created
// on the first mutation. If it exists, its contents become the initial
// cache state; an unreadable file returns an error wrapping ErrStorage and
// an undecodable one an error wrapping ErrParse. Entries are never
// silently dropped: one bad record fails the whole load.
func NewPersistent[K comparable, V any](capacity int, path string) (*PersistentCache[K, V], error) {
	cache, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}

	p := &PersistentCache[K, V]{cache: cache, path: path}

	if err := p.load(); err != nil {
		return nil, fmt.Errorf("new persistent cache: %w", err)
	}

	return p, nil
}

func (p *PersistentCache[K, V]) load() error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("read %s: %w: %w", p.path, ErrStorage, err)
	}

	// An empty file and an absent file mean the same thing.
	if len(data) == 0 {
		return nil
	}

	var entries []persistedEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode %s: %w: %w", p.path, ErrParse, err)
	}

	for _, e := range entries {
		p.cache.put(e.Key, e.Value)
	}

	return nil
}

// save writes the full cache contents to the file. The document is written
// to a temporary file in the same directory and renamed over the target,
// so a failed write never leaves a partially written cache file behind.
func (p *PersistentCache[K, V]) save() error {
	entries := make([]persistedEntry[K, V], 0, p.cache.Len())
	for key, value := range p.cache.All() {
		entries = append(entries, persistedEntry[K, V]{Key: key, Value: value})
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode cache entries: %w: %w", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.path), filepath.Base(p.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w: %w", p.path, ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("write %s: %w: %w", p.path, ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("close %s: %w: %w", tmp.Name(), ErrStorage, err)
	}

	if err := os.Rename(tmp.Name(), p.path); err != nil {
		_ = os.Remove(tmp.Name())

		return fmt.Errorf("rename %s to %s: %w: %w", tmp.Name(), p.path, ErrStorage, err)
	}

	return nil
}

// Get returns the value associated with the key and marks the key as the
// most recently used. The recency change is in-memory only; it is persisted
// with the next mutation or Persist call.
func (p *PersistentCache[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	return p.cache.Get(key)
}

// Peek returns the value associated with the key without updating its
// recency.
func (p *PersistentCache[K, V]) Peek(key K) (V, bool) { //nolint:ireturn
	return p.cache.Peek(key)
}

// Contains reports whether the key is in the cache without updating its
// recency.
func (p *PersistentCache[K, V]) Contains(key K) bool {
	return p.cache.Contains(key)
}

// Put adds the value under the key and writes the full cache contents
// through to the file. The write makes Put O(n) in the cache size, not
// O(1). On a write failure the new entry is still resident in memory and
// the error wraps ErrStorage.
func (p *PersistentCache[K, V]) Put(key K, value V) error {
	p.cache.put(key, value)

	if err := p.save(); err != nil {
		return fmt.Errorf("write through: %w", err)
	}

	return nil
}

// Remove removes the key, reports whether it was present and, if it was,
// writes the remaining contents through to the file.
func (p *PersistentCache[K, V]) Remove(key K) (bool, error) {
	if !p.cache.Remove(key) {
		return false, nil
	}

	if err := p.save(); err != nil {
		return true, fmt.Errorf("write through: %w", err)
	}

	return true, nil
}

// Clear removes all entries and writes the now empty state through to the
// file.
func (p *PersistentCache[K, V]) Clear() error {
	p.cache.Clear()

	if err := p.save(); err != nil {
		return fmt.Errorf("write through: %w", err)
	}

	return nil
}

// Persist writes the current contents, including the current recency
// order, to the file.
func (p *PersistentCache[K, V]) Persist() error {
	return p.save()
}

// Size returns the max number of entries the cache holds.
func (p *PersistentCache[K, V]) Size() int {
	return p.cache.Size()
}

// Len returns the number of entries currently stored in the cache.
func (p *PersistentCache[K, V]) Len() int {
	return p.cache.Len()
}

// IsEmpty reports whether the cache holds no entries.
func (p *PersistentCache[K, V]) IsEmpty() bool {
	return p.cache.IsEmpty()
}

// Keys returns the resident keys from least to most recently used.
func (p *PersistentCache[K, V]) Keys() []K {
	return p.cache.Keys()
}

// All returns an iterator over the entries from least to most recently
// used.
func (p *PersistentCache[K, V]) All() iter.Seq2[K, V] {
	return p.cache.All()
}
