// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadFromMap(t *testing.T) {
	t.Parallel()

	t.Run("Loads all provided values correctly", func(t *testing.T) {
		t.Parallel()

		testEnv := map[string]string{
			"DB_TYPE":                 "mysql",
			"DB_DSN":                  "user:pass@tcp(db:3306)/bo?parseTime=true",
			"MYSQL_HOST":              "db",
			"MYSQL_PORT":              "3307",
			"DB_MAX_OPEN_CONNS":       "55",
			"DB_CONN_MAX_LIFETIME":    "321",
			"SERVER_PORT":             "9090",
			"DEBUG":                   "true",
			"CORS_ALLOW_ORIGINS":      "https://a.example, https://b.example,",
			"CACHE_BACKEND":           "redis",
			"CACHE_TTL":               "30m",
			"STORAGE_ENABLED":         "true",
			"AWS_S3_BUCKET":           "gallery",
			"STORAGE_SIGNED_URL_TTL":  "1h",
			"STORAGE_ALLOWED_TYPES":   "image/png",
			"RATE_LIMIT_API_MAX":      "12",
			"STORAGE_MAX_UPLOAD_SIZE": "2048",
		}

		cfg, err := LoadFromMap(testEnv)
		require.NoError(t, err)

		require.Equal(t, DatabaseMySQL, cfg.Database.Type)
		require.Equal(t, "user:pass@tcp(db:3306)/bo?parseTime=true", cfg.Database.DSN)
		require.Equal(t, "db", cfg.Database.MySQL.Host)
		require.Equal(t, 3307, cfg.Database.MySQL.Port)
		require.Equal(t, 55, cfg.Database.MaxOpenConns)
		require.Equal(t, 321*time.Second, cfg.Database.ConnMaxLifetime)
		require.Equal(t, 9090, cfg.Server.Port)
		require.True(t, cfg.Server.Debug)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
		require.Equal(t, "redis", cfg.Cache.Backend)
		require.Equal(t, 30*time.Minute, cfg.Cache.TTL)
		require.True(t, cfg.Storage.Enabled)
		require.Equal(t, "gallery", cfg.Storage.Bucket)
		require.Equal(t, time.Hour, cfg.Storage.SignedURLTTL)
		require.Equal(t, []string{"image/png"}, cfg.Storage.AllowedTypes)
		require.Equal(t, int64(2048), cfg.Storage.MaxUploadSize)
		require.Equal(t, 12, cfg.RateLimits.API.Max)
	})

	t.Run("Applies defaults for missing values", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadFromMap(map[string]string{})
		require.NoError(t, err)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, "/v1", cfg.Server.BaseRoute)
		require.False(t, cfg.Server.Debug)
		require.Equal(t, DatabasePostgres, cfg.Database.Type)
		require.Equal(t, 5432, cfg.Database.Postgres.Port)
		require.Equal(t, 1*time.Hour, cfg.Cache.TTL)
		require.Equal(t, "memory", cfg.Cache.Backend)
		require.False(t, cfg.Storage.Enabled)
		require.Equal(t, "image-gallery-items/", cfg.Storage.KeyPrefix)
		require.Equal(t, 7*24*time.Hour, cfg.Storage.SignedURLTTL)
		require.Len(t, cfg.Storage.AllowedTypes, 4)
	})

	t.Run("Falls back on malformed numbers", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadFromMap(map[string]string{"SERVER_PORT": "eighty", "CACHE_TTL": "soon"})
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, time.Hour, cfg.Cache.TTL)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Rejects unknown database type", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFromMap(map[string]string{"DB_TYPE": "mongodb"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "DB_TYPE must be one of")
	})

	t.Run("Rejects unknown cache backend", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFromMap(map[string]string{"CACHE_BACKEND": "memcached"})
		require.ErrorContains(t, err, "CACHE_BACKEND")

		_, err = LoadFromMap(map[string]string{"CACHE_BACKEND": "memcached", "CACHE_ENABLED": "false"})
		require.NoError(t, err)
	})

	t.Run("Requires a bucket when storage is enabled", func(t *testing.T) {
		t.Parallel()

		_, err := LoadFromMap(map[string]string{"STORAGE_ENABLED": "true"})
		require.ErrorContains(t, err, "AWS_S3_BUCKET")
	})
}
