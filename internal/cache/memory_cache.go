package cache

import (
	"context"
	"path"
	"sync"
	"sync/atomic"
	"time"
)

type cacheItem struct {
	value      []byte
	expiration time.Time
}

func (i *cacheItem) expired(now time.Time) bool {
	return !i.expiration.IsZero() && now.After(i.expiration)
}

// MemoryCache is a process-local Cache with TTL expiry and an entry cap.
// When full, the entry closest to expiry is evicted.
type MemoryCache struct {
	mu         sync.RWMutex
	items      map[string]*cacheItem
	maxEntries int

	hits      int64
	misses    int64
	evictions int64

	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemoryCache starts a cache that sweeps expired entries every
// cleanupInterval. A non-positive maxEntries means unbounded.
func NewMemoryCache(maxEntries int, cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		items:      make(map[string]*cacheItem),
		maxEntries: maxEntries,
		stop:       make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanupLoop(cleanupInterval)
	}
	return c
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired(time.Now()) {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	item := &cacheItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiration = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOne()
	}
	c.items[key] = item
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.items, key)
		}
	}
	return nil
}

func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() { close(c.stop) })
	return nil
}

func (c *MemoryCache) Stats() CacheStats {
	c.mu.RLock()
	keys := int64(len(c.items))
	c.mu.RUnlock()
	return newStats(atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses), keys, atomic.LoadInt64(&c.evictions))
}

// evictOne must be called with mu held.
func (c *MemoryCache) evictOne() {
	var victim string
	var soonest time.Time
	for key, item := range c.items {
		if item.expired(time.Now()) {
			victim = key
			break
		}
		if victim == "" || (!item.expiration.IsZero() && (soonest.IsZero() || item.expiration.Before(soonest))) {
			victim, soonest = key, item.expiration
		}
	}
	if victim != "" {
		delete(c.items, victim)
		atomic.AddInt64(&c.evictions, 1)
	}
}

func (c *MemoryCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
		}
	}
}
