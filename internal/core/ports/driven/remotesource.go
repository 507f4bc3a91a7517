package driven

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// RemoteArticleSource is the read-mostly view over backend articles with
// server-owned per-user interaction records.
//
// Mutations are idempotent upserts keyed by (userID, articleID). Transport
// or server failures surface as *domain.TransportError; the source performs
// no automatic retry.
type RemoteArticleSource interface {
	// Fetch returns up to limit articles ordered by publish time
	// descending, each paired with the requesting user's interaction
	// record. A missing record means unread and unsaved.
	Fetch(ctx context.Context, userID string, limit int) ([]domain.FeedArticle, error)

	// Saved returns the user's saved articles, newest first.
	Saved(ctx context.Context, userID string) ([]domain.FeedArticle, error)

	// Get returns a single article by id with the user's interaction
	// record, or domain.ErrNotFound.
	Get(ctx context.Context, userID, articleID string) (*domain.FeedArticle, error)

	// SetRead upserts the read flag for (userID, articleID).
	SetRead(ctx context.Context, userID, articleID string, read bool) error

	// SetSaved upserts the saved and read flags for (userID, articleID)
	// in one write. Callers saving an article pass read=true; callers
	// unsaving pass the article's current read value so it survives the
	// upsert.
	SetSaved(ctx context.Context, userID, articleID string, saved, read bool) error
}
