package domain

import "time"

// User is the authenticated identity from the auth provider.
type User struct {
	// ID is the provider-assigned user id, used to key remote
	// interaction records and preferences.
	ID string

	// Email is the sign-in address.
	Email string

	// DisplayName is the optional profile name.
	DisplayName string

	// EmailVerified is false until the verification email is confirmed.
	EmailVerified bool
}

// Session is an authenticated session: {user, token} or absent.
type Session struct {
	// User is the signed-in identity.
	User User

	// AccessToken is the bearer token for API calls.
	AccessToken string

	// RefreshToken obtains new access tokens when the current one expires.
	RefreshToken string

	// ExpiresAt is when the access token expires.
	ExpiresAt time.Time
}

// Expired returns true once the access token has passed its expiry.
func (s *Session) Expired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}
