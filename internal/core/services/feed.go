package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// Ensure FeedService implements the interface.
var _ driving.FeedService = (*FeedService)(nil)

// DefaultFeedLimit caps the remote fetch when the caller passes no limit.
const DefaultFeedLimit = 50

// FeedService merges the local and remote article sources into one feed
// and routes interaction commands to the owning storage tier.
type FeedService struct {
	local     driven.LocalArticleStore
	remote    driven.RemoteArticleSource
	clipboard driven.Clipboard
	baseURL   string
}

// NewFeedService creates a new feed service. baseURL is the client's web
// origin, used to construct share links for local articles.
func NewFeedService(
	local driven.LocalArticleStore,
	remote driven.RemoteArticleSource,
	clipboard driven.Clipboard,
	baseURL string,
) *FeedService {
	return &FeedService{
		local:     local,
		remote:    remote,
		clipboard: clipboard,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// Load fetches both sources concurrently and returns the merged feed.
func (s *FeedService) Load(ctx context.Context, userID string, limit int) ([]domain.FeedArticle, error) {
	if s.local == nil || s.remote == nil {
		return nil, domain.ErrNotImplemented
	}
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	var localArticles, remoteArticles []domain.FeedArticle

	// The two reads are independent; neither is guaranteed to finish
	// first and the merge does not care.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		localArticles, err = s.local.List(gctx)
		if err != nil {
			return fmt.Errorf("list local articles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		remoteArticles, err = s.remote.Fetch(gctx, userID, limit)
		if err != nil {
			return fmt.Errorf("fetch articles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Merged feed: %d local, %d remote", len(localArticles), len(remoteArticles))
	return mergeFeeds(localArticles, remoteArticles), nil
}

// Saved returns the merged saved-articles view.
func (s *FeedService) Saved(ctx context.Context, userID string) ([]domain.FeedArticle, error) {
	if s.local == nil || s.remote == nil {
		return nil, domain.ErrNotImplemented
	}

	var localSaved, remoteSaved []domain.FeedArticle

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := s.local.List(gctx)
		if err != nil {
			return fmt.Errorf("list local articles: %w", err)
		}
		for _, item := range all {
			if item.Interaction.IsSaved {
				localSaved = append(localSaved, item)
			}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		remoteSaved, err = s.remote.Saved(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch saved articles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeFeeds(localSaved, remoteSaved), nil
}

// Get returns a single article by id, dispatched on its origin.
func (s *FeedService) Get(ctx context.Context, userID, articleID string) (*domain.FeedArticle, error) {
	if s.local == nil || s.remote == nil {
		return nil, domain.ErrNotImplemented
	}

	// The id prefix is parsed here, at the boundary; downstream code
	// uses the Origin field.
	if domain.OriginForID(articleID) == domain.OriginLocal {
		return s.local.Get(ctx, articleID)
	}
	return s.remote.Get(ctx, userID, articleID)
}

// ToggleRead negates the loaded item's read flag and persists it.
func (s *FeedService) ToggleRead(ctx context.Context, userID string, item domain.FeedArticle) (domain.FeedArticle, error) {
	if s.local == nil || s.remote == nil {
		return item, domain.ErrNotImplemented
	}

	upd := domain.InteractionUpdate{IsRead: domain.Bool(!item.Interaction.IsRead)}

	if item.IsLocal() {
		if err := s.local.SetInteraction(ctx, item.ID, upd); err != nil {
			return item, fmt.Errorf("toggle read: %w", err)
		}
	} else {
		if err := s.remote.SetRead(ctx, userID, item.ID, *upd.IsRead); err != nil {
			return item, fmt.Errorf("toggle read: %w", err)
		}
	}

	item.Interaction = item.Interaction.Apply(upd)
	return item, nil
}

// ToggleSave negates the loaded item's saved flag and persists it.
func (s *FeedService) ToggleSave(ctx context.Context, userID string, item domain.FeedArticle) (domain.FeedArticle, error) {
	if s.local == nil || s.remote == nil {
		return item, domain.ErrNotImplemented
	}

	saved := !item.Interaction.IsSaved
	upd := domain.InteractionUpdate{IsSaved: domain.Bool(saved)}

	if item.IsLocal() {
		if err := s.local.SetInteraction(ctx, item.ID, upd); err != nil {
			return item, fmt.Errorf("toggle save: %w", err)
		}
	} else {
		// Saving marks the article read; unsaving carries the current
		// read value through the upsert unchanged.
		read := item.Interaction.IsRead || saved
		if err := s.remote.SetSaved(ctx, userID, item.ID, saved, read); err != nil {
			return item, fmt.Errorf("toggle save: %w", err)
		}
	}

	item.Interaction = item.Interaction.Apply(upd)
	return item, nil
}

// Share resolves the item's canonical URL and copies it to the clipboard.
func (s *FeedService) Share(_ context.Context, item domain.FeedArticle) (string, error) {
	if s.clipboard == nil {
		return "", domain.ErrNotImplemented
	}

	url, err := s.shareURL(item)
	if err != nil {
		return "", err
	}

	if err := s.clipboard.WriteText(url); err != nil {
		// The URL is still returned so the caller can fall back to
		// displaying it.
		return url, fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return url, nil
}

// shareURL resolves the canonical link for an article. Local articles get
// a link under the client's web origin; remote articles carry their own.
func (s *FeedService) shareURL(item domain.FeedArticle) (string, error) {
	if item.IsLocal() {
		if s.baseURL == "" {
			return "", fmt.Errorf("share: no base URL configured")
		}
		return s.baseURL + "/article/" + item.ID, nil
	}
	if item.URL == "" {
		return "", fmt.Errorf("share: %w: article has no URL", domain.ErrNotFound)
	}
	return item.URL, nil
}

// mergeFeeds concatenates both sequences and sorts by publish time
// descending. The sort is stable: equal timestamps keep concatenation
// order, so local articles surface ahead of remote ones published at the
// same instant.
func mergeFeeds(local, remote []domain.FeedArticle) []domain.FeedArticle {
	merged := make([]domain.FeedArticle, 0, len(local)+len(remote))
	merged = append(merged, local...)
	merged = append(merged, remote...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})
	return merged
}
