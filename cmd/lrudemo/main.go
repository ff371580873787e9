package main

import (
	"log"
	"os"
	"path/filepath"

	"go.expect.digital/lrucache/lru"
)

// The demo keeps its state under ./cache. The path is handed to the cache
// explicitly; the library itself has no notion of a default location.
const (
	cacheDir  = "cache"
	cacheFile = "cache_data.json"
)

func main() {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.Fatalf("create cache dir: %v", err)
	}

	path := filepath.Join(cacheDir, cacheFile)

	cache, err := lru.NewPersistent[string, string](5, path)
	if err != nil {
		log.Fatalf("open cache: %v", err)
	}

	log.Printf("loaded %d entries from %s", cache.Len(), path)

	puts := map[string]string{
		"alpha": "1",
		"beta":  "2",
		"gamma": "3",
	}
	for key, value := range puts {
		if err := cache.Put(key, value); err != nil {
			log.Fatalf("put %q: %v", key, err)
		}
	}

	// Reading bumps recency in memory only; persist the new order so the
	// next run starts from it.
	if v, ok := cache.Get("alpha"); ok {
		log.Printf("get alpha = %q (now most recently used)", v)
	}

	if err := cache.Persist(); err != nil {
		log.Fatalf("persist: %v", err)
	}

	log.Printf("cache contents (least to most recently used):")

	for key, value := range cache.All() {
		log.Printf("  %s=%s", key, value)
	}

	log.Printf("saved %d entries to %s", cache.Len(), path)
}
