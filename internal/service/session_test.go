package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/hotel-client/internal/adapters/memstore"
	domainauth "github.com/target/hotel-client/internal/domain/auth"
	apperrors "github.com/target/hotel-client/internal/errors"
	"github.com/target/hotel-client/internal/mocks"
)

var (
	guestIdentity = domainauth.Identity{Email: "a@b.com", Name: "A", Type: domainauth.RoleGuest}
	staffIdentity = domainauth.Identity{Email: "desk@hotel.test", Name: "Front Desk", Type: domainauth.RoleStaff}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(store *memstore.Store) *SessionStore {
	return NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
}

func TestNewSessionStore_Defaults(t *testing.T) {
	s := NewSessionStore(SessionStoreOptions{Store: memstore.New()})

	assert.Equal(t, DefaultSessionKey, s.key)
	assert.NotNil(t, s.logger)
	assert.False(t, s.IsLoggedIn())
	_, ok := s.Identity()
	assert.False(t, ok)
}

func TestSessionStore_Login(t *testing.T) {
	store := memstore.New()
	s := newTestSession(store)
	ctx := context.Background()

	s.Login(ctx, guestIdentity)

	assert.True(t, s.IsLoggedIn())
	assert.True(t, s.IsGuest())
	assert.False(t, s.IsStaff())
	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, guestIdentity, got)

	raw, err := store.Get(ctx, DefaultSessionKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","name":"A","type":"guest"}`, string(raw))
}

func TestSessionStore_LoginThenInitAuthInNewProcess(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	newTestSession(store).Login(ctx, staffIdentity)

	restarted := newTestSession(store)
	assert.False(t, restarted.IsLoggedIn())

	restarted.InitAuth(ctx)

	got, ok := restarted.Identity()
	require.True(t, ok)
	assert.Equal(t, staffIdentity, got)
	assert.True(t, restarted.IsStaff())
}

func TestSessionStore_LogoutThenInitAuth(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	s := newTestSession(store)
	s.Login(ctx, guestIdentity)
	s.Logout(ctx)

	assert.False(t, s.IsLoggedIn())
	assert.False(t, s.IsGuest())
	assert.Equal(t, 0, store.Len())

	restarted := newTestSession(store)
	restarted.InitAuth(ctx)
	assert.False(t, restarted.IsLoggedIn())
}

func TestSessionStore_LogoutIsIdempotent(t *testing.T) {
	s := newTestSession(memstore.New())
	ctx := context.Background()

	s.Logout(ctx)
	s.Logout(ctx)

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_InitAuth_NoStoredData(t *testing.T) {
	s := newTestSession(memstore.New())

	s.InitAuth(context.Background())

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_InitAuth_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"email":`},
		{"wrong shape", `["a@b.com"]`},
		{"unknown role", `{"email":"a@b.com","name":"A","type":"admin"}`},
		{"missing role", `{"email":"a@b.com","name":"A"}`},
		{"missing email", `{"name":"A","type":"guest"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memstore.New()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, DefaultSessionKey, []byte(tt.data)))

			s := newTestSession(store)
			s.InitAuth(ctx)

			assert.False(t, s.IsLoggedIn())
			raw, err := store.Get(ctx, DefaultSessionKey)
			require.NoError(t, err)
			assert.Nil(t, raw, "corrupt entry should be removed")

			// Subsequent calls are no-ops.
			s.InitAuth(ctx)
			assert.False(t, s.IsLoggedIn())
		})
	}
}

func TestSessionStore_InitAuth_Idempotent(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	newTestSession(store).Login(ctx, guestIdentity)

	s := newTestSession(store)
	s.InitAuth(ctx)
	s.InitAuth(ctx)

	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, guestIdentity, got)
}

func TestSessionStore_CustomKey(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	s := NewSessionStore(SessionStoreOptions{Store: store, Key: "hotel.user", Logger: discardLogger()})
	s.Login(ctx, guestIdentity)

	raw, err := store.Get(ctx, "hotel.user")
	require.NoError(t, err)
	assert.NotNil(t, raw)
	raw, err = store.Get(ctx, DefaultSessionKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSessionStore_LoginPersistFailureIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	store.EXPECT().Set(gomock.Any(), DefaultSessionKey, gomock.Any()).Return(errors.New("quota exceeded"))

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	s.Login(context.Background(), guestIdentity)

	assert.True(t, s.IsLoggedIn(), "session stays active in memory")
	assert.True(t, s.IsGuest())
}

func TestSessionStore_LogoutDeleteFailureStillClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	store.EXPECT().Set(gomock.Any(), DefaultSessionKey, gomock.Any()).Return(nil)
	store.EXPECT().Delete(gomock.Any(), DefaultSessionKey).Return(errors.New("storage unavailable"))

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	ctx := context.Background()
	s.Login(ctx, staffIdentity)
	s.Logout(ctx)

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_InitAuth_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), DefaultSessionKey).Return(nil, errors.New("connection refused"))

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	s.InitAuth(context.Background())

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_InitAuth_EmptyValueIsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	// No Delete expected: an empty value is not corrupt data.
	store.EXPECT().Get(gomock.Any(), DefaultSessionKey).Return([]byte{}, nil)

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	s.InitAuth(context.Background())

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_InitAuth_CorruptDeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Get(gomock.Any(), DefaultSessionKey).Return([]byte("{"), nil),
		store.EXPECT().Delete(gomock.Any(), DefaultSessionKey).Return(errors.New("read-only")),
	)

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	s.InitAuth(context.Background())

	assert.False(t, s.IsLoggedIn())
}

func TestSessionStore_PersistedIdentity(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	s := newTestSession(store)

	_, err := s.PersistedIdentity(ctx)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))

	s.Login(ctx, guestIdentity)
	got, err := s.PersistedIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, guestIdentity, got)

	require.NoError(t, store.Set(ctx, DefaultSessionKey, []byte("garbage")))
	_, err = s.PersistedIdentity(ctx)
	assert.True(t, apperrors.IsUnauthenticated(err))
	// Reading never mutates in-memory state.
	assert.True(t, s.IsLoggedIn())
}

func TestSessionStore_PersistedIdentity_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), DefaultSessionKey).Return(nil, errors.New("timeout"))

	s := NewSessionStore(SessionStoreOptions{Store: store, Logger: discardLogger()})
	_, err := s.PersistedIdentity(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}

func TestSessionStore_IdentityIsACopy(t *testing.T) {
	s := newTestSession(memstore.New())
	id := guestIdentity
	s.Login(context.Background(), id)

	id.Type = domainauth.RoleStaff
	got, _ := s.Identity()
	got.Type = domainauth.RoleStaff

	assert.True(t, s.IsGuest())
}
