package nhost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure AuthService implements the interface.
var _ driven.AuthProvider = (*AuthService)(nil)

// DefaultTimeout is the default auth request timeout.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the auth service.
type Config struct {
	// BaseURL is the auth service root, e.g. https://xyz.auth.region.nhost.run/v1 (required).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// AuthService authenticates against the Nhost auth REST endpoints.
type AuthService struct {
	client  *http.Client
	baseURL string
}

// NewAuthService creates a new auth service adapter.
func NewAuthService(cfg Config) (*AuthService, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("nhost: base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &AuthService{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}, nil
}

// wireSession is the provider's session payload.
type wireSession struct {
	AccessToken          string `json:"accessToken"`
	AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
	RefreshToken         string `json:"refreshToken"`
	User                 *struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		DisplayName   string `json:"displayName"`
		EmailVerified bool   `json:"emailVerified"`
	} `json:"user"`
}

// sessionEnvelope wraps wireSession for endpoints that nest it.
type sessionEnvelope struct {
	Session *wireSession `json:"session"`
}

// wireError is the provider's error payload.
type wireError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SignUp registers a new account. The provider holds the session until
// the verification email is confirmed, so the returned session is nil
// for unverified accounts.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var envelope sessionEnvelope
	if err := s.post(ctx, "/signup/email-password", body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Session == nil || envelope.Session.AccessToken == "" {
		return nil, nil
	}
	return envelope.Session.toDomain(), nil
}

// SignIn authenticates with email and password.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var envelope sessionEnvelope
	if err := s.post(ctx, "/signin/email-password", body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Session == nil || envelope.Session.AccessToken == "" {
		return nil, &domain.AuthError{Message: "sign-in returned no session"}
	}
	return envelope.Session.toDomain(), nil
}

// SignOut invalidates the session's refresh token.
func (s *AuthService) SignOut(ctx context.Context, session *domain.Session) error {
	if session == nil || session.RefreshToken == "" {
		return nil
	}
	body := map[string]string{"refreshToken": session.RefreshToken}
	return s.post(ctx, "/signout", body, nil)
}

// Refresh exchanges a refresh token for a fresh session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	body := map[string]string{"refreshToken": refreshToken}

	// The token endpoint returns the session unwrapped.
	var session wireSession
	if err := s.post(ctx, "/token", body, &session); err != nil {
		return nil, err
	}

	if session.AccessToken == "" {
		return nil, &domain.AuthError{Message: "token refresh returned no session"}
	}
	return session.toDomain(), nil
}

// ResendVerificationEmail asks the provider to send another verification
// email for the address.
func (s *AuthService) ResendVerificationEmail(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.post(ctx, "/user/email/send-verification-email", body, nil)
}

// post runs one auth endpoint call, decoding the response into out when
// non-nil. Provider-reported failures become *domain.AuthError; network
// failures become *domain.TransportError.
func (s *AuthService) post(ctx context.Context, path string, body any, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &domain.TransportError{Op: "auth " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Op: "auth " + path, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode >= 400 {
		var wire wireError
		message := string(respBody)
		if err := json.Unmarshal(respBody, &wire); err == nil && wire.Message != "" {
			message = wire.Message
		}
		return &domain.AuthError{Status: resp.StatusCode, Message: message}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &domain.TransportError{Op: "auth " + path, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	return nil
}

func (w *wireSession) toDomain() *domain.Session {
	session := &domain.Session{
		AccessToken:  w.AccessToken,
		RefreshToken: w.RefreshToken,
	}
	if w.AccessTokenExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(w.AccessTokenExpiresIn) * time.Second)
	}
	if w.User != nil {
		session.User = domain.User{
			ID:            w.User.ID,
			Email:         w.User.Email,
			DisplayName:   w.User.DisplayName,
			EmailVerified: w.User.EmailVerified,
		}
	}
	return session
}
