package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// Ensure AuthoringService implements the interface.
var _ driving.AuthoringService = (*AuthoringService)(nil)

// AuthoringService validates drafts and writes device-authored articles
// into the local store.
type AuthoringService struct {
	local driven.LocalArticleStore

	// now is swappable for tests.
	now func() time.Time
}

// NewAuthoringService creates a new authoring service.
func NewAuthoringService(local driven.LocalArticleStore) *AuthoringService {
	return &AuthoringService{
		local: local,
		now:   time.Now,
	}
}

// Submit validates the draft and appends the synthesised article.
// Self-authored content skips AI enrichment: the summary is derived from
// the content and the sentiment is fixed to neutral.
func (s *AuthoringService) Submit(
	ctx context.Context,
	draft domain.ArticleDraft,
	authorFallback string,
) (*domain.FeedArticle, error) {
	if s.local == nil {
		return nil, domain.ErrNotImplemented
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	author := draft.Author
	if author == "" {
		author = authorFallback
	}

	now := s.now().UTC()
	item := domain.FeedArticle{
		Article: domain.Article{
			ID:                   newLocalID(now),
			Origin:               domain.OriginLocal,
			Title:                draft.Title,
			Summary:              draft.DeriveSummary(),
			Content:              draft.Content,
			Source:               draft.Source,
			Author:               author,
			PublishedAt:          now,
			ImageURL:             draft.ImageURL,
			Sentiment:            domain.SentimentNeutral,
			SentimentExplanation: domain.LocalSentimentExplanation,
		},
		// The author has read their own article.
		Interaction: domain.Interaction{IsRead: true, IsSaved: false},
	}

	if err := s.local.Append(ctx, item); err != nil {
		return nil, fmt.Errorf("append article: %w", err)
	}

	logger.Info("Authored local article %s", item.ID)
	return &item, nil
}

// newLocalID builds a local-origin id from the creation timestamp plus a
// random suffix, so articles authored within the same millisecond still
// get distinct ids.
func newLocalID(now time.Time) string {
	return fmt.Sprintf("%s%d-%s", domain.LocalIDPrefix, now.UnixMilli(), uuid.NewString()[:8])
}
