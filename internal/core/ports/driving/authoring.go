package driving

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// AuthoringService validates and stores device-authored articles.
type AuthoringService interface {
	// Submit validates the draft, synthesises a local-origin article
	// with a derived summary and neutral sentiment, and appends it to
	// the local store. authorFallback fills the byline when the draft
	// has none (typically the signed-in user's email).
	Submit(ctx context.Context, draft domain.ArticleDraft, authorFallback string) (*domain.FeedArticle, error)
}
