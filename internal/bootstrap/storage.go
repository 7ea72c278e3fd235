package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/hotel-client/config"
	"github.com/target/hotel-client/internal/adapters/memstore"
	redisadapter "github.com/target/hotel-client/internal/adapters/redis"
	"github.com/target/hotel-client/internal/adapters/sqlite"
	"github.com/target/hotel-client/internal/ports"
)

// StorageOptions selects and configures the identity persistence backend.
type StorageOptions struct {
	Storage config.StorageConfig
	Redis   config.RedisConfig
	Logger  *slog.Logger
}

// BuildKeyValueStore opens the configured backend. The returned closer
// releases connections and is never nil.
//
//nolint:ireturn // callers only depend on the store port.
func BuildKeyValueStore(ctx context.Context, opts StorageOptions) (ports.KeyValueStore, io.Closer, error) {
	switch opts.Storage.Backend {
	case config.StorageBackendMemory:
		return memstore.New(), nopCloser{}, nil
	case config.StorageBackendSQLite, "":
		store, err := sqlite.Open(ctx, opts.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		if opts.Logger != nil {
			opts.Logger.Debug("sqlite session store opened", "path", opts.Storage.Path)
		}
		return store, store, nil
	case config.StorageBackendRedis:
		client, err := ConnectRedis(ctx, opts.Redis, opts.Logger)
		if err != nil {
			return nil, nil, err
		}
		return redisadapter.NewStoreWithPrefix(client, opts.Redis.KeyPrefix), client, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", opts.Storage.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConnectRedis creates a Redis client and verifies it with a ping.
//
//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	var (
		client   redis.UniversalClient
		addrDesc string
		err      error
	)

	if cfg.UseSentinel {
		client, addrDesc, err = newSentinelClient(cfg)
	} else {
		client, addrDesc, err = newDirectClient(cfg)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Debug("redis connected", "addr", redactAddr(addrDesc))
	}
	return client, nil
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newSentinelClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	if len(cfg.SentinelNodes) == 0 {
		return nil, "", errors.New("redis sentinel configuration requires at least one sentinel node")
	}

	opts := &redis.FailoverOptions{
		MasterName:       cfg.SentinelMasterName,
		SentinelAddrs:    cfg.SentinelNodes,
		Password:         cfg.Password,
		SentinelPassword: cfg.SentinelPassword,
		DB:               cfg.DB,
	}
	return redis.NewFailoverClient(opts), "sentinel:" + cfg.SentinelMasterName, nil
}

//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func newDirectClient(cfg config.RedisConfig) (redis.UniversalClient, string, error) {
	opts, err := directOptions(cfg)
	if err != nil {
		return nil, "", err
	}
	return redis.NewClient(opts), opts.Addr, nil
}

// directOptions turns a host:port or redis:// URI into client options.
// A URL's own password and DB win over the separate settings.
func directOptions(cfg config.RedisConfig) (*redis.Options, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return nil, errors.New("redis direct configuration requires a URI")
	}

	if isRedisURL(uri) {
		opt, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		if opt.Password == "" {
			opt.Password = cfg.Password
		}
		return opt, nil
	}

	return &redis.Options{
		Addr:     uri,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}

// redactAddr strips credentials before an address is logged.
func redactAddr(addr string) string {
	if u, err := url.Parse(addr); err == nil && u.User != nil {
		u.User = url.User("*")
		return u.Redacted()
	}
	if i := strings.LastIndex(addr, "@"); i > -1 {
		return addr[i+1:]
	}
	return addr
}
