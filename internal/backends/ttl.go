package backends

import (
	"context"
	"sculink/internal/ports"
	"sculink/internal/types"
	"sync"
	"time"
)

// TTL is a minimal in-process TTL cache. Lazy expiration on Get.
type TTL[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]entry[V]
}

type entry[V any] struct {
	val V
	exp time.Time
}

func NewTTL[K comparable, V any]() *TTL[K, V] {
	return &TTL[K, V]{data: make(map[K]entry[V])}
}

// Get returns the value and true if found and not expired; otherwise zero value and false.
func (t *TTL[K, V]) Get(k K) (V, bool) {
	t.mu.RLock()
	e, ok := t.data[k]
	t.mu.RUnlock()
	if !ok || time.Now().After(e.exp) {
		var zero V
		return zero, false
	}
	return e.val, true
}

func (t *TTL[K, V]) Set(k K, v V, ttl time.Duration) {
	t.mu.Lock()
	t.data[k] = entry[V]{val: v, exp: time.Now().Add(ttl)}
	t.mu.Unlock()
}

// Purge drops every entry.
func (t *TTL[K, V]) Purge() {
	t.mu.Lock()
	clear(t.data)
	t.mu.Unlock()
}

const listKey = ""

// CachedStore serves ListSections from memory for ttl so that bursts of
// configuration reloads do not each hit the backend. Writes go through and
// purge the cache.
type CachedStore struct {
	ports.SectionStore
	ttl   time.Duration
	cache *TTL[string, []types.Section]
}

func NewCachedStore(inner ports.SectionStore, ttl time.Duration) *CachedStore {
	return &CachedStore{SectionStore: inner, ttl: ttl, cache: NewTTL[string, []types.Section]()}
}

func (c *CachedStore) ListSections(ctx context.Context) ([]types.Section, error) {
	if v, ok := c.cache.Get(listKey); ok {
		return v, nil
	}
	v, err := c.SectionStore.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(listKey, v, c.ttl)
	return v, nil
}

func (c *CachedStore) PutSection(ctx context.Context, section types.Section) error {
	defer c.cache.Purge()
	return c.SectionStore.PutSection(ctx, section)
}

func (c *CachedStore) DeleteSection(ctx context.Context, name string) error {
	defer c.cache.Purge()
	return c.SectionStore.DeleteSection(ctx, name)
}

func (c *CachedStore) ClearAll(ctx context.Context) error {
	defer c.cache.Purge()
	return c.SectionStore.ClearAll(ctx)
}
