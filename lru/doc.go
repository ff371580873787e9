/*
Package lru implements a Least Recently Used (LRU) cache.

The cache holds a fixed number of entries and evicts the entry that has
gone the longest without being read or written when a new key would exceed
the capacity. Get and Put run in O(1) time regardless of the cache size.

A Cache is owned by a single goroutine. For concurrent use, wrap it in a
Locked (see below).

# Example Usage

## Basic

The following example shows all basic operations of the cache.

	type User struct {
		ID   int
		Name string
	}

	func basicExample() {
		userCache, err := lru.New[int, User](128)
		if err != nil {
			// Handle error. New fails only on a non-positive capacity.
		}

		user := User{ID: 1, Name: "John Doe"}

		// Put the user in the cache. Put on a *Cache never fails.
		_ = userCache.Put(user.ID, user)

		// Get the user from the cache. A hit makes the key the most
		// recently used.
		userFromCache, ok := userCache.Get(user.ID)
		if !ok {
			// Not in the cache.
		}

		fmt.Printf("Got user: %+v\n", userFromCache) // Got user: {ID:1 Name:John Doe}

		// Update the cache entry. Updating an existing key never evicts.
		user.Name = "Jane Doe"
		_ = userCache.Put(user.ID, user)

		// Inspect without disturbing the recency order.
		userFromCache, ok = userCache.Peek(user.ID)

		fmt.Printf("Got user: %+v\n", userFromCache) // Got user: {ID:1 Name:Jane Doe}

		// Iterate from least to most recently used.
		for id, u := range userCache.All() {
			fmt.Printf("%d: %+v\n", id, u)
		}

		fmt.Printf("Capacity of cache: %d\n", userCache.Size()) // Capacity of cache: 128
		fmt.Printf("Count of stored values in cache: %d\n", userCache.Len())
	}

## Persistent

The following example shows a cache whose contents survive process
restarts. The state lives in a single JSON file; every mutation writes the
file through, so dropping the instance loses nothing.

	func persistentExample() {
		userCache, err := lru.NewPersistent[int, User](128, "users.json")
		if err != nil {
			// Handle error. The file existed but could not be read
			// (lru.ErrStorage) or decoded (lru.ErrParse).
		}

		// Entries from a previous run are already resident, in the
		// recency order they were saved with.

		if err := userCache.Put(1, User{ID: 1, Name: "John Doe"}); err != nil {
			// The entry is in memory, but the write-through failed.
		}
	}

## Concurrent

A cache shared between goroutines needs one lock around the whole
instance.

	cache, _ := lru.New[string, int](1024)
	shared := lru.NewLocked[string, int](cache)

	// shared.Get and shared.Put are now safe from any goroutine.
*/
package lru
