package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ppiankov/claimready/internal/cache"
	"github.com/ppiankov/claimready/internal/model"
)

// CachedStore layers a memory cache over another Store. Save writes through
// and refreshes the cached entry, so a session never reads its own stale
// graph.
type CachedStore struct {
	inner Store
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedStore wraps inner with an in-memory cache.
func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner: inner,
		cache: cache.NewMemoryCache(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Load returns the cached graph if present, falling back to the inner store.
func (s *CachedStore) Load(ctx context.Context, claimID string) (*model.CaseGraph, error) {
	key := cache.Key(claimID)
	if data, found := s.cache.Get(key); found {
		var g model.CaseGraph
		if err := json.Unmarshal(data, &g); err == nil {
			return &g, nil
		}
		// Corrupt entry: drop it and fall through to the inner store.
		_ = s.cache.Delete(key)
	}

	g, err := s.inner.Load(ctx, claimID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(g); err == nil {
		_ = s.cache.Set(key, data, s.ttl)
	}
	return g, nil
}

// Save writes through to the inner store and refreshes the cache.
func (s *CachedStore) Save(ctx context.Context, g *model.CaseGraph) error {
	if err := s.inner.Save(ctx, g); err != nil {
		return err
	}

	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal graph for cache: %w", err)
	}
	_ = s.cache.Set(cache.Key(g.ClaimID), data, s.ttl)
	return nil
}
