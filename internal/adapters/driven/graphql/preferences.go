package graphql

import (
	"context"
	"fmt"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure PreferenceStore implements the interface.
var _ driven.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore persists per-user news preferences in the backend.
// Save is create-or-update: the first save inserts the record, later
// saves update it in place by its backend id.
type PreferenceStore struct {
	client *Client
}

// NewPreferenceStore creates a new backend preference store.
func NewPreferenceStore(client *Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

const getPreferencesQuery = `
query GetUserPreferences($userId: ID!) {
  userPreferences(where: { user_id: { _eq: $userId } }) {
    id
    user_id
    topics
    keywords
    preferred_sources
  }
}`

const createPreferencesMutation = `
mutation CreateUserPreferences(
  $userId: ID!
  $topics: [String!]!
  $keywords: [String!]
  $preferredSources: [String!]
) {
  insertUserPreferences(
    object: {
      user_id: $userId
      topics: $topics
      keywords: $keywords
      preferred_sources: $preferredSources
    }
  ) {
    id
  }
}`

const updatePreferencesMutation = `
mutation UpdateUserPreferences(
  $id: ID!
  $topics: [String!]!
  $keywords: [String!]
  $preferredSources: [String!]
) {
  updateUserPreferences(
    pk_columns: { id: $id }
    _set: {
      topics: $topics
      keywords: $keywords
      preferred_sources: $preferredSources
    }
  ) {
    id
  }
}`

// wirePreferences is the GraphQL preference record shape.
type wirePreferences struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	Topics           []string `json:"topics"`
	Keywords         []string `json:"keywords"`
	PreferredSources []string `json:"preferred_sources"`
}

// Get returns the user's preferences.
func (s *PreferenceStore) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	var data struct {
		UserPreferences []wirePreferences `json:"userPreferences"`
	}

	variables := map[string]any{"userId": userID}
	if err := s.client.execute(ctx, "fetch preferences", getPreferencesQuery, variables, &data); err != nil {
		return nil, err
	}

	if len(data.UserPreferences) == 0 {
		return nil, fmt.Errorf("preferences for user %s: %w", userID, domain.ErrNotFound)
	}

	wire := data.UserPreferences[0]
	return &domain.Preferences{
		ID:               wire.ID,
		UserID:           wire.UserID,
		Topics:           wire.Topics,
		Keywords:         wire.Keywords,
		PreferredSources: wire.PreferredSources,
	}, nil
}

// Save creates or updates the user's preference record.
func (s *PreferenceStore) Save(ctx context.Context, prefs domain.Preferences) (*domain.Preferences, error) {
	variables := map[string]any{
		"topics":           prefs.Topics,
		"keywords":         prefs.Keywords,
		"preferredSources": prefs.PreferredSources,
	}

	if prefs.ID == "" {
		variables["userId"] = prefs.UserID

		var data struct {
			Inserted *wirePreferences `json:"insertUserPreferences"`
		}
		if err := s.client.execute(ctx, "create preferences", createPreferencesMutation, variables, &data); err != nil {
			return nil, err
		}
		if data.Inserted != nil {
			prefs.ID = data.Inserted.ID
		}
		return &prefs, nil
	}

	variables["id"] = prefs.ID
	if err := s.client.execute(ctx, "update preferences", updatePreferencesMutation, variables, nil); err != nil {
		return nil, err
	}
	return &prefs, nil
}
