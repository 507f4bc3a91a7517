package domain

// Preferences holds a user's topic/keyword/source selections.
// One record per user, created on first save and updated in place.
type Preferences struct {
	// ID is the backend's record id, empty until the first save.
	ID string

	// UserID is the owning user.
	UserID string

	// Topics the user follows.
	Topics []string

	// Keywords the user tracks.
	Keywords []string

	// PreferredSources the user favours.
	PreferredSources []string
}
