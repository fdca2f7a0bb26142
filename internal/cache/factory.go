package cache

import (
	"fmt"

	"github.com/qolzam/backoffice/internal/platform/config"
)

// New builds the backend selected by cfg.Backend. A disabled cache yields
// a nil Cache; Service treats that as always-miss.
func New(cfg config.CacheConfig) (Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	backend := CacheType(cfg.Backend)
	switch backend {
	case CacheTypeMemory:
		return NewMemoryCache(cfg.MaxEntries, cfg.CleanupInterval), nil
	case CacheTypeRedis:
		rc, err := NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidCacheType, backend)
	}
}
