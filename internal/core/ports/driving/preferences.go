package driving

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// PreferencesService manages the user's topic/keyword/source selections.
type PreferencesService interface {
	// Get returns the user's preferences; before the first save it
	// returns an empty record rather than an error.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)

	// Save creates or updates the user's preferences.
	Save(ctx context.Context, prefs domain.Preferences) (*domain.Preferences, error)
}
