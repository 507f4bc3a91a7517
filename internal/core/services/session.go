package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// Ensure SessionManager implements the interface.
var _ driving.SessionService = (*SessionManager)(nil)

// refreshTokenKey is where the refresh token persists between runs.
const refreshTokenKey = "session.refresh_token"

// SessionManager is the single owner of authentication state. All session
// reads and writes go through it; dependents subscribe for changes rather
// than holding their own copy.
type SessionManager struct {
	provider driven.AuthProvider
	kv       driven.KeyValueStore

	mu          sync.RWMutex
	current     *domain.Session
	subscribers []func(*domain.Session)
}

// NewSessionManager creates a new session manager.
func NewSessionManager(provider driven.AuthProvider, kv driven.KeyValueStore) *SessionManager {
	return &SessionManager{
		provider: provider,
		kv:       kv,
	}
}

// SignUp registers a new account. The provider sends a verification email
// and no session is stored until sign-in succeeds.
func (m *SessionManager) SignUp(ctx context.Context, email, password string) error {
	if m.provider == nil {
		return domain.ErrNotImplemented
	}
	if _, err := m.provider.SignUp(ctx, email, password); err != nil {
		return err
	}
	return nil
}

// SignIn authenticates and stores the resulting session.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.provider == nil {
		return nil, domain.ErrNotImplemented
	}

	session, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	m.setSession(session)
	return session, nil
}

// SignOut invalidates and clears the current session.
func (m *SessionManager) SignOut(ctx context.Context) error {
	if m.provider == nil {
		return domain.ErrNotImplemented
	}

	m.mu.RLock()
	session := m.current
	m.mu.RUnlock()

	if session != nil {
		if err := m.provider.SignOut(ctx, session); err != nil {
			// The local session clears regardless; the provider-side
			// token expires on its own.
			logger.Warn("Sign-out at provider failed: %v", err)
		}
	}

	m.setSession(nil)
	return nil
}

// Current returns the active session, refreshing it when expired.
// Falls back to the persisted refresh token on a fresh process.
func (m *SessionManager) Current(ctx context.Context) (*domain.Session, error) {
	m.mu.RLock()
	session := m.current
	m.mu.RUnlock()

	if session != nil && !session.Expired() {
		return session, nil
	}

	refreshToken := ""
	if session != nil {
		refreshToken = session.RefreshToken
	} else if m.kv != nil {
		stored, ok, err := m.kv.Get(refreshTokenKey)
		if err != nil {
			return nil, fmt.Errorf("load refresh token: %w", err)
		}
		if ok {
			refreshToken = stored
		}
	}

	if refreshToken == "" {
		return nil, domain.ErrUnauthenticated
	}
	if m.provider == nil {
		return nil, domain.ErrNotImplemented
	}

	refreshed, err := m.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}

	m.setSession(refreshed)
	return refreshed, nil
}

// Subscribe registers a callback invoked on every session change.
func (m *SessionManager) Subscribe(fn func(*domain.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// ResendVerificationEmail asks the provider to resend the verification
// email for the address.
func (m *SessionManager) ResendVerificationEmail(ctx context.Context, email string) error {
	if m.provider == nil {
		return domain.ErrNotImplemented
	}
	return m.provider.ResendVerificationEmail(ctx, email)
}

// setSession replaces the owned session, persists the refresh token and
// notifies subscribers.
func (m *SessionManager) setSession(session *domain.Session) {
	m.mu.Lock()
	m.current = session
	subscribers := make([]func(*domain.Session), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	if m.kv != nil {
		if session == nil {
			if err := m.kv.Delete(refreshTokenKey); err != nil {
				logger.Warn("Failed to clear refresh token: %v", err)
			}
		} else if err := m.kv.Set(refreshTokenKey, session.RefreshToken); err != nil {
			logger.Warn("Failed to persist refresh token: %v", err)
		}
	}

	for _, fn := range subscribers {
		fn(session)
	}
}
