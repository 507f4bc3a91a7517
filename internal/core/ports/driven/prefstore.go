package driven

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// PreferenceStore persists per-user news preferences in the backend.
type PreferenceStore interface {
	// Get returns the user's preferences, or domain.ErrNotFound before
	// the first save.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)

	// Save creates the record on first save and updates it in place
	// afterwards. Returns the stored record including its assigned ID.
	Save(ctx context.Context, prefs domain.Preferences) (*domain.Preferences, error)
}
