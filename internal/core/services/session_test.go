package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/storage/memory"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

func TestSessionManager_SignInStoresSession(t *testing.T) {
	kv := memory.NewKeyValueStore()
	manager := NewSessionManager(&fakeAuthProvider{}, kv)
	ctx := context.Background()

	session, err := manager.SignIn(ctx, "pat@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.User.ID)

	current, err := manager.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.AccessToken, current.AccessToken)

	// The refresh token persists for the next process.
	stored, ok, err := kv.Get("session.refresh_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, session.RefreshToken, stored)
}

func TestSessionManager_CurrentWithoutSession(t *testing.T) {
	manager := NewSessionManager(&fakeAuthProvider{}, memory.NewKeyValueStore())

	_, err := manager.Current(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSessionManager_CurrentRestoresFromPersistedToken(t *testing.T) {
	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set("session.refresh_token", "refresh-old"))

	// Fresh manager, as after a process restart.
	manager := NewSessionManager(&fakeAuthProvider{}, kv)

	session, err := manager.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "access-2", session.AccessToken)
	assert.Equal(t, "refresh-old-rotated", session.RefreshToken)

	// The rotated token replaces the stored one.
	stored, ok, err := kv.Get("session.refresh_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "refresh-old-rotated", stored)
}

func TestSessionManager_CurrentRefreshesExpiredSession(t *testing.T) {
	provider := &fakeAuthProvider{}
	manager := NewSessionManager(provider, memory.NewKeyValueStore())
	ctx := context.Background()

	_, err := manager.SignIn(ctx, "pat@example.com", "secret")
	require.NoError(t, err)

	// Force expiry of the in-memory session.
	manager.mu.Lock()
	manager.current.ExpiresAt = time.Now().Add(-time.Minute)
	manager.mu.Unlock()

	session, err := manager.Current(ctx)

	require.NoError(t, err)
	assert.Equal(t, "access-2", session.AccessToken)
}

func TestSessionManager_SignOutClearsEverything(t *testing.T) {
	kv := memory.NewKeyValueStore()
	provider := &fakeAuthProvider{}
	manager := NewSessionManager(provider, kv)
	ctx := context.Background()

	_, err := manager.SignIn(ctx, "pat@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, manager.SignOut(ctx))

	assert.Equal(t, 1, provider.signOutCalls)
	_, err = manager.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, ok, err := kv.Get("session.refresh_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionManager_SubscribersNotified(t *testing.T) {
	manager := NewSessionManager(&fakeAuthProvider{}, memory.NewKeyValueStore())
	ctx := context.Background()

	var events []*domain.Session
	manager.Subscribe(func(s *domain.Session) {
		events = append(events, s)
	})

	_, err := manager.SignIn(ctx, "pat@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, manager.SignOut(ctx))

	require.Len(t, events, 2)
	assert.NotNil(t, events[0])
	assert.Nil(t, events[1])
}

func TestSessionManager_NilProvider(t *testing.T) {
	manager := NewSessionManager(nil, memory.NewKeyValueStore())
	ctx := context.Background()

	err := manager.SignUp(ctx, "a@b.c", "pw")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = manager.SignIn(ctx, "a@b.c", "pw")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = manager.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
