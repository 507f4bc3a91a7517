package driving

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// SessionService is the single owner of authentication state. It wraps
// the auth provider, persists the refresh token across process restarts,
// and broadcasts session changes to subscribers.
type SessionService interface {
	// SignUp registers a new account.
	SignUp(ctx context.Context, email, password string) error

	// SignIn authenticates and stores the resulting session.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut invalidates and clears the current session.
	SignOut(ctx context.Context) error

	// Current returns the active session, refreshing an expired access
	// token from the stored refresh token. Returns
	// domain.ErrUnauthenticated when no session exists.
	Current(ctx context.Context) (*domain.Session, error)

	// Subscribe registers a callback invoked on every session change.
	// The callback receives nil on sign-out.
	Subscribe(fn func(*domain.Session))

	// ResendVerificationEmail asks the provider to resend the
	// verification email.
	ResendVerificationEmail(ctx context.Context, email string) error
}
