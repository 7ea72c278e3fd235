// Package testutil holds fixtures and infrastructure helpers shared by tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisProbeTimeout = 2 * time.Second
	redisLockTTL      = 30 * time.Minute
	// Redis DB 0 holds the reservation locks; tests get DBs 1..15.
	redisMetaDB   = 0
	redisMaxDB    = 15
	redisLockName = "hotel-client:testutil:db_lock"
)

// TempSQLitePath returns a session database path inside a per-test temporary directory.
func TempSQLitePath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hotelctl-test.db")
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// requireRedis turns a missing Redis into a failure instead of a skip (CI).
func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// redisCandidates lists the addresses probed for a test Redis, most specific first.
func redisCandidates() []string {
	var out []string
	for _, key := range []string{"TEST_REDIS_ADDR", "REDIS_ADDR"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			out = append(out, v)
		}
	}
	return append(out, "localhost:6379", "redis:6379")
}

func pingRedis(addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

// redisLockKey names the reservation key for test DB i.
func redisLockKey(i int) string {
	return fmt.Sprintf("%s:%d", redisLockName, i)
}

// reserveRedisDB picks the DB a test may flush. TEST_REDIS_DB pins it; otherwise
// the first DB whose lock key can be claimed in the meta DB is used and released
// on cleanup. Falls back to DB 1 when every slot is taken.
func reserveRedisDB(t testing.TB, addr string) int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
		t.Logf("ignoring invalid TEST_REDIS_DB=%q", v)
	}

	meta := redis.NewClient(&redis.Options{Addr: addr, DB: redisMetaDB})
	defer meta.Close()

	owner := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
	for i := 1; i <= redisMaxDB; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
		ok, err := meta.SetNX(ctx, redisLockKey(i), owner, redisLockTTL).Result()
		cancel()
		if err != nil || !ok {
			continue
		}
		key := redisLockKey(i)
		t.Cleanup(func() { releaseRedisDB(t, addr, key) })
		return i
	}

	t.Logf("no free test Redis DB at %s, sharing DB 1", addr)
	return 1
}

func releaseRedisDB(t testing.TB, addr, key string) {
	c := redis.NewClient(&redis.Options{Addr: addr, DB: redisMetaDB})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()
	if err := c.Del(ctx, key).Err(); err != nil {
		t.Logf("warning: release redis db lock %s: %v", key, err)
	}
}

// SetupTestRedis returns a client on a freshly flushed, reserved Redis DB.
// The test is skipped when no Redis answers, unless TEST_REQUIRE_REDIS or
// TEST_REQUIRE_INFRA is set.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	var addr string
	for _, candidate := range redisCandidates() {
		if err := pingRedis(candidate); err == nil {
			addr = candidate
			break
		}
	}
	if addr == "" {
		if requireRedis() {
			t.Fatal("Redis not available for testing")
		}
		t.Skip("Redis not available for testing")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: reserveRedisDB(t, addr)})
	ctx, cancel := context.WithTimeout(context.Background(), redisProbeTimeout)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		_ = client.Close()
		t.Fatalf("flush test redis db: %v", err)
	}
	return client
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
