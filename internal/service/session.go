package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	domainauth "github.com/target/hotel-client/internal/domain/auth"
	apperrors "github.com/target/hotel-client/internal/errors"
	"github.com/target/hotel-client/internal/ports"
)

// DefaultSessionKey is the storage key holding the serialized identity.
const DefaultSessionKey = "user"

var errInvalidIdentity = errors.New("stored identity is missing email or has an unknown role")

// SessionStoreOptions groups dependencies for SessionStore.
type SessionStoreOptions struct {
	Store  ports.KeyValueStore
	Key    string       // defaults to DefaultSessionKey
	Logger *slog.Logger // defaults to slog.Default()
}

// SessionStore is the single source of truth for who is logged in, and as what.
// The session is active exactly when an identity is held; persistence is best effort.
// It is safe for concurrent use.
type SessionStore struct {
	store  ports.KeyValueStore
	key    string
	logger *slog.Logger

	mu       sync.RWMutex
	identity *domainauth.Identity
}

// NewSessionStore constructs a SessionStore. The store starts inactive; call InitAuth to recover.
func NewSessionStore(opts SessionStoreOptions) *SessionStore {
	key := opts.Key
	if key == "" {
		key = DefaultSessionKey
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		store:  opts.Store,
		key:    key,
		logger: logger.With("component", "session_store"),
	}
}

// Login activates the session for identity and persists a copy.
// The caller is trusted; a failed write leaves the session active in memory only.
func (s *SessionStore) Login(ctx context.Context, identity domainauth.Identity) {
	s.mu.Lock()
	id := identity
	s.identity = &id
	s.mu.Unlock()

	data, err := json.Marshal(identity)
	if err != nil {
		s.logger.WarnContext(ctx, "encode identity failed, session not persisted", "error", err)
		return
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "persist identity failed, session is in-memory only",
			"key", s.key, "error", err)
		return
	}
	s.logger.DebugContext(ctx, "session started", "email", identity.Email, "role", identity.Type)
}

// Logout clears the session and removes the persisted identity. It is idempotent.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.WarnContext(ctx, "remove persisted identity failed", "key", s.key, "error", err)
	}
}

// InitAuth recovers a previously persisted identity.
// Missing or empty data is a no-op. Corrupt data is logged and deleted, leaving the session inactive.
// Recovery failures are never returned to the caller.
func (s *SessionStore) InitAuth(ctx context.Context) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "read persisted identity failed", "key", s.key, "error", err)
		return
	}
	if len(data) == 0 {
		return
	}

	identity, err := decodeIdentity(data)
	if err != nil {
		s.logger.ErrorContext(ctx, "error parsing stored user data", "key", s.key, "error", err)
		if delErr := s.store.Delete(ctx, s.key); delErr != nil {
			s.logger.WarnContext(ctx, "remove corrupt identity failed", "key", s.key, "error", delErr)
		}
		return
	}

	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()
	s.logger.DebugContext(ctx, "session recovered", "email", identity.Email, "role", identity.Type)
}

// PersistedIdentity reads the stored identity without touching in-memory state.
func (s *SessionStore) PersistedIdentity(ctx context.Context) (domainauth.Identity, error) {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "read persisted identity")
	}
	if data == nil {
		return domainauth.Identity{}, apperrors.Unauthenticated("no logged-in user")
	}
	identity, err := decodeIdentity(data)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthenticated, "no valid logged-in user")
	}
	return identity, nil
}

// IsLoggedIn reports whether a session is active.
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Identity returns the active identity and whether one is present.
func (s *SessionStore) Identity() (domainauth.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domainauth.Identity{}, false
	}
	return *s.identity, true
}

// IsGuest reports whether the active identity is a guest.
func (s *SessionStore) IsGuest() bool {
	id, ok := s.Identity()
	return ok && id.IsGuest()
}

// IsStaff reports whether the active identity is staff.
func (s *SessionStore) IsStaff() bool {
	id, ok := s.Identity()
	return ok && id.IsStaff()
}

func decodeIdentity(data []byte) (domainauth.Identity, error) {
	var identity domainauth.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return domainauth.Identity{}, fmt.Errorf("unmarshal identity: %w", err)
	}
	if !identity.Validate() {
		return domainauth.Identity{}, errInvalidIdentity
	}
	return identity, nil
}
