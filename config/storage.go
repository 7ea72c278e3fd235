package config

import (
	"fmt"
	"strings"
)

// StorageBackend selects where the session identity is persisted.
type StorageBackend string

const (
	// StorageBackendMemory keeps the identity for the lifetime of the process.
	StorageBackendMemory StorageBackend = "memory"
	// StorageBackendSQLite persists the identity in a local database file.
	StorageBackendSQLite StorageBackend = "sqlite"
	// StorageBackendRedis persists the identity in Redis, shared between hosts.
	StorageBackendRedis StorageBackend = "redis"
)

const (
	defaultStoragePath = "hotelctl.db"
	defaultStorageKey  = "user"
	defaultKeyPrefix   = "hotel-client:"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageBackend.
func (b *StorageBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "sqlite", "redis":
		*b = StorageBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid StorageBackend: %q (valid options: memory, sqlite, redis)", v)
	}
}

// StorageConfig contains session storage configuration.
type StorageConfig struct {
	Backend StorageBackend `env:"STORAGE_BACKEND" envDefault:"sqlite"`

	// Path is the SQLite database file (sqlite backend only).
	Path string `env:"STORAGE_PATH" envDefault:"hotelctl.db"`

	// Key is the storage key holding the serialized identity.
	Key string `env:"STORAGE_KEY" envDefault:"user"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = StorageBackendSQLite
	}
	if s.Path = strings.TrimSpace(s.Path); s.Path == "" {
		s.Path = defaultStoragePath
	}
	if s.Key = strings.TrimSpace(s.Key); s.Key == "" {
		s.Key = defaultStorageKey
	}
}

// RedisConfig contains Redis configuration for the redis storage backend.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	KeyPrefix          string   `env:"KEY_PREFIX"           envDefault:"hotel-client:"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:""`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
}

// Sanitize applies guardrails to Redis configuration values.
func (r *RedisConfig) Sanitize() {
	r.URI = strings.TrimSpace(r.URI)
	if r.DB < 0 {
		r.DB = 0
	}
	if r.KeyPrefix == "" {
		r.KeyPrefix = defaultKeyPrefix
	}
	nodes := r.SentinelNodes[:0]
	for _, n := range r.SentinelNodes {
		if n = strings.TrimSpace(n); n != "" {
			nodes = append(nodes, n)
		}
	}
	r.SentinelNodes = nodes
}
