package driven

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// AuthProvider is the external authentication boundary.
// Credential and verification failures surface as *domain.AuthError.
type AuthProvider interface {
	// SignUp registers a new account. The provider sends a verification
	// email; the returned session may be nil until verification.
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)

	// SignIn authenticates with email and password.
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)

	// SignOut invalidates the session's refresh token.
	SignOut(ctx context.Context, session *domain.Session) error

	// Refresh exchanges a refresh token for a fresh session.
	Refresh(ctx context.Context, refreshToken string) (*domain.Session, error)

	// ResendVerificationEmail asks the provider to send another
	// verification email for the address.
	ResendVerificationEmail(ctx context.Context, email string) error
}
