package cache

import "time"

// Cache defines the interface for byte caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key for a claim's graph document.
func Key(claimID string) string {
	return "claimready:graph:v1:" + claimID
}
