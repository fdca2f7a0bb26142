package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Cache      CacheConfig      `json:"cache"`
	Storage    StorageConfig    `json:"storage"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string   `json:"host"`
	Port         int      `json:"port"`
	BaseRoute    string   `json:"baseRoute"`
	AllowOrigins []string `json:"allowOrigins"`
	BodyLimit    int      `json:"bodyLimit"`
	Debug        bool     `json:"debug"`
}

// Supported DB_TYPE values.
const (
	DatabasePostgres = "postgresql"
	DatabaseMySQL    = "mysql"
	DatabaseSQLite   = "sqlite"
)

// DatabaseConfig selects the SQL backend. DSN, when set, wins over the
// per-driver fields.
type DatabaseConfig struct {
	Type            string         `json:"type"`
	DSN             string         `json:"dsn"`
	Postgres        PostgresConfig `json:"postgres"`
	MySQL           MySQLConfig    `json:"mysql"`
	SQLitePath      string         `json:"sqlitePath"`
	MaxOpenConns    int            `json:"maxOpenConns"`
	MaxIdleConns    int            `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration  `json:"connMaxLifetime"`
	AutoMigrate     bool           `json:"autoMigrate"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"sslMode"`
}

type MySQLConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// CacheConfig configures the lookup cache.
type CacheConfig struct {
	Enabled         bool          `json:"enabled"`
	Backend         string        `json:"backend"`
	Prefix          string        `json:"prefix"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
	MaxEntries      int           `json:"maxEntries"`
	Redis           RedisConfig   `json:"redis"`
}

type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	DB           int           `json:"db"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// StorageConfig configures the S3 compatible bucket used by the image gallery.
type StorageConfig struct {
	Enabled         bool          `json:"enabled"`
	Bucket          string        `json:"bucket"`
	Region          string        `json:"region"`
	Endpoint        string        `json:"endpoint"`
	AccessKeyID     string        `json:"accessKeyId"`
	SecretAccessKey string        `json:"-"`
	UsePathStyle    bool          `json:"usePathStyle"`
	KeyPrefix       string        `json:"keyPrefix"`
	SignedURLTTL    time.Duration `json:"signedUrlTtl"`
	MaxUploadSize   int64         `json:"maxUploadSize"`
	AllowedTypes    []string      `json:"allowedTypes"`
}

type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

type RateLimitsConfig struct {
	API    RateLimitConfig `json:"api"`
	Upload RateLimitConfig `json:"upload"`
}

// source resolves a configuration key. ok is false when the key is unset.
type source func(key string) (string, bool)

// LoadFromEnv loads configuration from the environment, after merging in
// the first .env file found. Variables already set in the environment win.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		if loadErr = godotenv.Load(envPath); loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return load(func(key string) (string, bool) {
		value := os.Getenv(key)
		return value, value != ""
	})
}

// LoadFromMap loads configuration from an in-memory map. Used by tests to
// avoid touching process environment.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return load(func(key string) (string, bool) {
		value, ok := envMap[key]
		return value, ok
	})
}

func load(src source) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, ok := src(key); ok {
			return value
		}
		return defaultValue
	}
	getInt := func(key string, defaultValue int) int {
		if value, ok := src(key); ok {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}
	getInt64 := func(key string, defaultValue int64) int64 {
		if value, ok := src(key); ok {
			if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
				return intValue
			}
		}
		return defaultValue
	}
	getBool := func(key string, defaultValue bool) bool {
		if value, ok := src(key); ok {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}
	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, ok := src(key); ok {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}
	getList := func(key, defaultValue string) []string {
		return splitList(get(key, defaultValue))
	}

	config := &Config{
		Server: ServerConfig{
			Host:         get("HOST", "localhost"),
			Port:         getInt("SERVER_PORT", 8080),
			BaseRoute:    get("BASE_ROUTE", "/v1"),
			AllowOrigins: getList("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
			BodyLimit:    getInt("SERVER_BODY_LIMIT", 12*1024*1024),
			Debug:        getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Type: get("DB_TYPE", DatabasePostgres),
			DSN:  get("DB_DSN", ""),
			Postgres: PostgresConfig{
				Host:     get("POSTGRES_HOST", "localhost"),
				Port:     getInt("POSTGRES_PORT", 5432),
				Username: get("POSTGRES_USERNAME", "postgres"),
				Password: get("POSTGRES_PASSWORD", ""),
				Database: get("POSTGRES_DATABASE", "backoffice"),
				SSLMode:  get("POSTGRES_SSL_MODE", "disable"),
			},
			MySQL: MySQLConfig{
				Host:     get("MYSQL_HOST", "localhost"),
				Port:     getInt("MYSQL_PORT", 3306),
				Username: get("MYSQL_USERNAME", "root"),
				Password: get("MYSQL_PASSWORD", ""),
				Database: get("MYSQL_DATABASE", "backoffice"),
			},
			SQLitePath:      get("SQLITE_PATH", "backoffice.db"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: time.Duration(getInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", false),
		},
		Cache: CacheConfig{
			Enabled:         getBool("CACHE_ENABLED", true),
			Backend:         get("CACHE_BACKEND", "memory"),
			Prefix:          get("CACHE_PREFIX", "backoffice:"),
			TTL:             getDuration("CACHE_TTL", 1*time.Hour),
			CleanupInterval: getDuration("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
			MaxEntries:      getInt("CACHE_MAX_ENTRIES", 10000),
			Redis: RedisConfig{
				Address:      get("REDIS_ADDRESS", "localhost:6379"),
				Password:     get("REDIS_PASSWORD", ""),
				DB:           getInt("REDIS_DB", 0),
				PoolSize:     getInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", 5),
				MaxConnAge:   time.Duration(getInt("REDIS_MAX_CONN_AGE", 300)) * time.Second,
			},
		},
		Storage: StorageConfig{
			Enabled:         getBool("STORAGE_ENABLED", false),
			Bucket:          get("AWS_S3_BUCKET", ""),
			Region:          get("AWS_REGION", "us-east-1"),
			Endpoint:        get("AWS_S3_ENDPOINT", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
			UsePathStyle:    getBool("AWS_S3_USE_PATH_STYLE", false),
			KeyPrefix:       get("STORAGE_KEY_PREFIX", "image-gallery-items/"),
			SignedURLTTL:    getDuration("STORAGE_SIGNED_URL_TTL", 7*24*time.Hour),
			MaxUploadSize:   getInt64("STORAGE_MAX_UPLOAD_SIZE", 10*1024*1024),
			AllowedTypes:    getList("STORAGE_ALLOWED_TYPES", "image/jpeg,image/png,image/gif,image/webp"),
		},
		RateLimits: RateLimitsConfig{
			API: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_API_ENABLED", true),
				Max:      getInt("RATE_LIMIT_API_MAX", 300),
				Duration: getDuration("RATE_LIMIT_API_DURATION", 1*time.Minute),
			},
			Upload: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_UPLOAD_ENABLED", true),
				Max:      getInt("RATE_LIMIT_UPLOAD_MAX", 30),
				Duration: getDuration("RATE_LIMIT_UPLOAD_DURATION", 1*time.Minute),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	validDbTypes := []string{DatabasePostgres, DatabaseMySQL, DatabaseSQLite}
	if !contains(validDbTypes, c.Database.Type) {
		errors = append(errors, fmt.Sprintf("DB_TYPE must be one of: %s", strings.Join(validDbTypes, ", ")))
	}

	validBackends := []string{"memory", "redis"}
	if c.Cache.Enabled && !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if c.Storage.Enabled {
		if strings.TrimSpace(c.Storage.Bucket) == "" {
			errors = append(errors, "AWS_S3_BUCKET is required when STORAGE_ENABLED is set")
		}
		if strings.TrimSpace(c.Storage.Region) == "" {
			errors = append(errors, "AWS_REGION is required when STORAGE_ENABLED is set")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
