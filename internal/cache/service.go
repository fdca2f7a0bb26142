package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/qolzam/backoffice/internal/pkg/log"
)

// Service stores JSON values under a key prefix with a default TTL.
// Cache failures are logged and never fail the caller.
type Service struct {
	cache  Cache
	prefix string
	ttl    time.Duration
}

// NewService wraps c. c may be nil when caching is disabled.
func NewService(c Cache, prefix string, ttl time.Duration) *Service {
	return &Service{cache: c, prefix: prefix, ttl: ttl}
}

func (s *Service) Enabled() bool {
	return s != nil && s.cache != nil
}

func (s *Service) key(key string) string {
	return s.prefix + key
}

// GetCached unmarshals the cached value for key into target.
func (s *Service) GetCached(ctx context.Context, key string, target interface{}) error {
	if !s.Enabled() {
		return ErrCacheDisabled
	}
	data, err := s.cache.Get(ctx, s.key(key))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserializationFailed, err)
	}
	return nil
}

// CacheData marshals data and stores it for the default TTL.
func (s *Service) CacheData(ctx context.Context, key string, data interface{}) error {
	if !s.Enabled() {
		return ErrCacheDisabled
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return s.cache.Set(ctx, s.key(key), raw, s.ttl)
}

// Invalidate removes key.
func (s *Service) Invalidate(ctx context.Context, key string) {
	if !s.Enabled() {
		return
	}
	if err := s.cache.Delete(ctx, s.key(key)); err != nil {
		log.WarnWithContext(ctx, "cache invalidate %s: %v", key, err)
	}
}

// InvalidatePattern removes every key matching pattern under the prefix.
func (s *Service) InvalidatePattern(ctx context.Context, pattern string) {
	if !s.Enabled() {
		return
	}
	if err := s.cache.DeletePattern(ctx, s.key(pattern)); err != nil {
		log.WarnWithContext(ctx, "cache invalidate %s: %v", pattern, err)
	}
}

func (s *Service) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.cache.Close()
}

// Remember returns the cached value for key, or calls load and caches its
// result. Load errors are returned and nothing is cached.
func Remember[T any](ctx context.Context, s *Service, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	err := s.GetCached(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrKeyNotFound) && !errors.Is(err, ErrCacheDisabled) {
		log.WarnWithContext(ctx, "cache read %s: %v", key, err)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if s.Enabled() {
		if err := s.CacheData(ctx, key, value); err != nil {
			log.WarnWithContext(ctx, "cache write %s: %v", key, err)
		}
	}
	return value, nil
}
