package driving

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// FeedService reconciles the two article sources into one feed and routes
// interaction commands to the owning storage tier.
type FeedService interface {
	// Load fetches both sources and returns the merged feed ordered by
	// publish time descending. Ties keep concatenation order: local
	// articles before remote ones.
	Load(ctx context.Context, userID string, limit int) ([]domain.FeedArticle, error)

	// Saved returns the merged saved-articles view, same ordering rule.
	Saved(ctx context.Context, userID string) ([]domain.FeedArticle, error)

	// Get returns a single article by id, dispatched on its origin.
	Get(ctx context.Context, userID, articleID string) (*domain.FeedArticle, error)

	// ToggleRead negates the loaded item's read flag and writes the new
	// value to the owning tier, returning the updated item.
	ToggleRead(ctx context.Context, userID string, item domain.FeedArticle) (domain.FeedArticle, error)

	// ToggleSave negates the loaded item's saved flag and writes the new
	// value to the owning tier. Saving also marks the item read.
	ToggleSave(ctx context.Context, userID string, item domain.FeedArticle) (domain.FeedArticle, error)

	// Share resolves the item's canonical URL and copies it to the
	// system clipboard, returning the URL.
	Share(ctx context.Context, item domain.FeedArticle) (string, error)
}
