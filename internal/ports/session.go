package ports

// Package ports defines interfaces (hexagonal ports) for session persistence.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/target/hotel-client/internal/domain/auth"
)

// KeyValueStore is the durable key-value surface the session layer persists into.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// Returns nil and no error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// IdentitySource exposes the identity persisted by the session layer.
type IdentitySource interface {
	PersistedIdentity(ctx context.Context) (domainauth.Identity, error)
}
