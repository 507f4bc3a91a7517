package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure ArticleSource implements the interface.
var _ driven.RemoteArticleSource = (*ArticleSource)(nil)

// ArticleSource reads backend articles and upserts per-user interaction
// records through the GraphQL endpoint.
type ArticleSource struct {
	client *Client
}

// NewArticleSource creates a new backend article source.
func NewArticleSource(client *Client) *ArticleSource {
	return &ArticleSource{client: client}
}

const fetchArticlesQuery = `
query GetNewsArticles($userId: ID!, $limit: Int!) {
  newsArticles(limit: $limit, order_by: { published_at: desc }) {
    id
    title
    source
    author
    published_at
    url
    image_url
    processedArticle {
      summary
      sentiment
      sentiment_explanation
    }
    userArticleInteractions(where: { user_id: { _eq: $userId } }) {
      is_read
      is_saved
    }
  }
}`

const savedArticlesQuery = `
query GetSavedArticles($userId: ID!) {
  userArticleInteractions(
    where: { user_id: { _eq: $userId }, is_saved: { _eq: true } }
    order_by: { newsArticle: { published_at: desc } }
  ) {
    is_read
    is_saved
    newsArticle {
      id
      title
      source
      author
      published_at
      url
      image_url
      processedArticle {
        summary
        sentiment
        sentiment_explanation
      }
    }
  }
}`

const getArticleQuery = `
query GetNewsArticle($userId: ID!, $articleId: ID!) {
  newsArticle(id: $articleId) {
    id
    title
    source
    author
    published_at
    url
    image_url
    processedArticle {
      summary
      sentiment
      sentiment_explanation
    }
    userArticleInteractions(where: { user_id: { _eq: $userId } }) {
      is_read
      is_saved
    }
  }
}`

const setReadMutation = `
mutation SetArticleRead($userId: ID!, $articleId: ID!, $isRead: Boolean!) {
  insertUserArticleInteraction(
    object: {
      user_id: $userId
      article_id: $articleId
      is_read: $isRead
      is_saved: false
    }
    on_conflict: {
      constraint: user_article_interaction_pkey
      update_columns: [is_read]
    }
  ) {
    id
  }
}`

const setSavedMutation = `
mutation SetArticleSaved($userId: ID!, $articleId: ID!, $isSaved: Boolean!, $isRead: Boolean!) {
  insertUserArticleInteraction(
    object: {
      user_id: $userId
      article_id: $articleId
      is_saved: $isSaved
      is_read: $isRead
    }
    on_conflict: {
      constraint: user_article_interaction_pkey
      update_columns: [is_saved, is_read]
    }
  ) {
    id
  }
}`

// wireArticle is the GraphQL article shape. Enrichment fields live in a
// nested processedArticle record; the interaction list holds at most one
// entry for the requesting user.
type wireArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`

	ProcessedArticle *struct {
		Summary              string `json:"summary"`
		Sentiment            string `json:"sentiment"`
		SentimentExplanation string `json:"sentiment_explanation"`
	} `json:"processedArticle"`

	Interactions []wireInteraction `json:"userArticleInteractions"`
}

type wireInteraction struct {
	IsRead  bool `json:"is_read"`
	IsSaved bool `json:"is_saved"`
}

// Fetch returns the latest backend articles with the user's interactions.
func (s *ArticleSource) Fetch(ctx context.Context, userID string, limit int) ([]domain.FeedArticle, error) {
	var data struct {
		NewsArticles []wireArticle `json:"newsArticles"`
	}

	variables := map[string]any{"userId": userID, "limit": limit}
	if err := s.client.execute(ctx, "fetch articles", fetchArticlesQuery, variables, &data); err != nil {
		return nil, err
	}

	articles := make([]domain.FeedArticle, 0, len(data.NewsArticles))
	for _, wire := range data.NewsArticles {
		articles = append(articles, wire.toDomain(nil))
	}
	return articles, nil
}

// Saved returns the user's saved backend articles, newest first.
func (s *ArticleSource) Saved(ctx context.Context, userID string) ([]domain.FeedArticle, error) {
	var data struct {
		Interactions []struct {
			wireInteraction
			NewsArticle wireArticle `json:"newsArticle"`
		} `json:"userArticleInteractions"`
	}

	variables := map[string]any{"userId": userID}
	if err := s.client.execute(ctx, "fetch saved articles", savedArticlesQuery, variables, &data); err != nil {
		return nil, err
	}

	articles := make([]domain.FeedArticle, 0, len(data.Interactions))
	for _, entry := range data.Interactions {
		articles = append(articles, entry.NewsArticle.toDomain(&entry.wireInteraction))
	}
	return articles, nil
}

// Get returns a single backend article with the user's interaction.
func (s *ArticleSource) Get(ctx context.Context, userID, articleID string) (*domain.FeedArticle, error) {
	var data struct {
		NewsArticle *wireArticle `json:"newsArticle"`
	}

	variables := map[string]any{"userId": userID, "articleId": articleID}
	if err := s.client.execute(ctx, "fetch article", getArticleQuery, variables, &data); err != nil {
		return nil, err
	}

	if data.NewsArticle == nil {
		return nil, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
	}

	article := data.NewsArticle.toDomain(nil)
	return &article, nil
}

// SetRead upserts the read flag for (userID, articleID).
func (s *ArticleSource) SetRead(ctx context.Context, userID, articleID string, read bool) error {
	variables := map[string]any{"userId": userID, "articleId": articleID, "isRead": read}
	return s.client.execute(ctx, "set read flag", setReadMutation, variables, nil)
}

// SetSaved upserts the saved and read flags for (userID, articleID)
// together. The caller supplies both so that unsaving cannot clobber an
// existing read flag.
func (s *ArticleSource) SetSaved(ctx context.Context, userID, articleID string, saved, read bool) error {
	variables := map[string]any{"userId": userID, "articleId": articleID, "isSaved": saved, "isRead": read}
	return s.client.execute(ctx, "set saved flag", setSavedMutation, variables, nil)
}

// toDomain converts the wire shape, taking the interaction either from the
// embedded per-user list or from an enclosing interaction row. A missing
// record means unread and unsaved.
func (w wireArticle) toDomain(interaction *wireInteraction) domain.FeedArticle {
	article := domain.FeedArticle{
		Article: domain.Article{
			ID:          w.ID,
			Origin:      domain.OriginForID(w.ID),
			Title:       w.Title,
			Source:      w.Source,
			Author:      w.Author,
			PublishedAt: w.PublishedAt,
			URL:         w.URL,
			ImageURL:    w.ImageURL,
		},
	}

	if w.ProcessedArticle != nil {
		article.Summary = w.ProcessedArticle.Summary
		article.Sentiment = domain.Sentiment(w.ProcessedArticle.Sentiment)
		article.SentimentExplanation = w.ProcessedArticle.SentimentExplanation
	}

	switch {
	case interaction != nil:
		article.Interaction = domain.Interaction{IsRead: interaction.IsRead, IsSaved: interaction.IsSaved}
	case len(w.Interactions) > 0:
		article.Interaction = domain.Interaction{IsRead: w.Interactions[0].IsRead, IsSaved: w.Interactions[0].IsSaved}
	}

	return article
}
