package graphql

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

func TestPreferenceStore_Get(t *testing.T) {
	response := `{
	  "data": {
	    "userPreferences": [
	      {
	        "id": "p1",
	        "user_id": "user-1",
	        "topics": ["technology", "science"],
	        "keywords": ["golang"],
	        "preferred_sources": ["Wire"]
	      }
	    ]
	  }
	}`
	client, _ := newTestClient(t, http.StatusOK, response)
	store := NewPreferenceStore(client)

	prefs, err := store.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "p1", prefs.ID)
	assert.Equal(t, []string{"technology", "science"}, prefs.Topics)
	assert.Equal(t, []string{"golang"}, prefs.Keywords)
}

func TestPreferenceStore_GetBeforeFirstSave(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"data":{"userPreferences":[]}}`)
	store := NewPreferenceStore(client)

	_, err := store.Get(context.Background(), "user-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreferenceStore_SaveCreates(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"data":{"insertUserPreferences":{"id":"p1"}}}`)
	store := NewPreferenceStore(client)

	saved, err := store.Save(context.Background(), domain.Preferences{
		UserID: "user-1",
		Topics: []string{"technology"},
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", saved.ID)
	assert.Equal(t, "user-1", captured.Variables["userId"])
	assert.Contains(t, captured.Query, "insertUserPreferences")
}

func TestPreferenceStore_SaveUpdatesInPlace(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"data":{"updateUserPreferences":{"id":"p1"}}}`)
	store := NewPreferenceStore(client)

	saved, err := store.Save(context.Background(), domain.Preferences{
		ID:     "p1",
		UserID: "user-1",
		Topics: []string{"science"},
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", saved.ID)
	assert.Equal(t, "p1", captured.Variables["id"])
	assert.Contains(t, captured.Query, "updateUserPreferences")
}
