// Package mocks provides mock implementations for testing the hotel client.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockKeyValueStore(ctrl)
//	store.EXPECT().Set(gomock.Any(), "user", gomock.Any()).Return(errors.New("disk full"))
package mocks

// Generate mock for KeyValueStore interface from internal/ports package.
// This creates MockKeyValueStore with methods for all KeyValueStore interface methods:
// Get, Set, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=kv_store_mock.go github.com/target/hotel-client/internal/ports KeyValueStore

// Generate mock for IdentitySource interface from internal/ports package.
// This creates MockIdentitySource with methods for all IdentitySource interface methods:
// PersistedIdentity
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_source_mock.go github.com/target/hotel-client/internal/ports IdentitySource
