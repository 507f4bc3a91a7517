package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnauthenticated indicates no signed-in session is available.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrClipboardUnavailable indicates the system clipboard could not be
	// written. Reported to the caller, never retried.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// ValidationError reports missing required fields on user input.
// It is user-correctable: the caller should re-prompt for the named fields.
type ValidationError struct {
	// Fields lists the names of the missing required fields.
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Is makes ValidationError match ErrInvalidInput in errors.Is checks.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TransportError wraps a network or API failure from a remote boundary.
// The failure is surfaced to the caller as retryable; no component retries
// automatically - every retry is a manual user action.
type TransportError struct {
	// Op names the operation that failed (e.g. "fetch articles").
	Op string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError reports a credential or verification failure from the auth
// provider. Message is the provider's own text, surfaced verbatim so the
// user sees an actionable reason (e.g. an unverified email address).
type AuthError struct {
	// Status is the provider's HTTP status code, zero if unavailable.
	Status int

	// Message is the provider's error message.
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("auth error (status %d): %s", e.Status, e.Message)
	}
	return "auth error: " + e.Message
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
