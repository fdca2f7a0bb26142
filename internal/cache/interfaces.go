package cache

import (
	"context"
	"errors"
	"time"
)

// Cache defines the byte-level cache interface shared by all backends
type Cache interface {
	// Get returns ErrKeyNotFound for missing or expired keys
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a glob pattern ('*' and '?')
	DeletePattern(ctx context.Context, pattern string) error

	Close() error

	Stats() CacheStats
}

// CacheStats provides cache performance statistics
type CacheStats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	HitRatio  float64 `json:"hit_ratio"`
	Keys      int64   `json:"keys"`
	Evictions int64   `json:"evictions"`
}

func newStats(hits, misses, keys, evictions int64) CacheStats {
	s := CacheStats{Hits: hits, Misses: misses, Keys: keys, Evictions: evictions}
	if total := hits + misses; total > 0 {
		s.HitRatio = float64(hits) / float64(total)
	}
	return s
}

// Common cache errors
var (
	ErrKeyNotFound           = errors.New("key not found")
	ErrCacheUnavailable      = errors.New("cache unavailable")
	ErrInvalidCacheType      = errors.New("invalid cache type")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrSerializationFailed   = errors.New("serialization failed")
	ErrDeserializationFailed = errors.New("deserialization failed")
)

// CacheType represents different cache backend types
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
)

// IsValid checks if the cache type is valid
func (ct CacheType) IsValid() bool {
	switch ct {
	case CacheTypeMemory, CacheTypeRedis:
		return true
	default:
		return false
	}
}
