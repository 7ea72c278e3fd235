//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are run on demand and are not tracked in go.mod
// since they are development tools, not runtime dependencies.
package tools

// Development tools:
//
// mockgen - Generates gomock doubles for internal/ports
//   Run: go generate ./internal/mocks
//   Version: v0.6.0 (matches go.uber.org/mock in go.mod)
//   Docs: https://github.com/uber-go/mock
//
// Redis - Integration tests in internal/adapters/redis and internal/bootstrap
//   Run: docker run --rm -p 6379:6379 redis:7
//   Tests skip when TEST_REDIS_ADDR (default localhost:6379) is unreachable.
