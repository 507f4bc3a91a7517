package driven

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// LocalArticleStore persists device-authored articles and their embedded
// interaction flags, namespaced by device identity.
type LocalArticleStore interface {
	// List returns the device's articles, most recently appended first.
	// An absent collection yields an empty slice, never an error.
	List(ctx context.Context) ([]domain.FeedArticle, error)

	// Append inserts the article at the head of the collection.
	// The caller supplies a unique id carrying domain.LocalIDPrefix.
	Append(ctx context.Context, article domain.FeedArticle) error

	// SetInteraction merges the update into the embedded interaction
	// record of the article with the given id. Unset fields are left
	// unchanged. Returns domain.ErrNotFound for an unknown id.
	SetInteraction(ctx context.Context, id string, upd domain.InteractionUpdate) error

	// Get returns the article with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.FeedArticle, error)
}
