package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure ArticleStore implements the interface.
var _ driven.LocalArticleStore = (*ArticleStore)(nil)

// collectionKeyPrefix namespaces the article collection by device.
const collectionKeyPrefix = "userArticles_"

// ArticleStore keeps device-authored articles as a single JSON collection
// in the key-value store, namespaced by the device identifier.
type ArticleStore struct {
	kv       driven.KeyValueStore
	identity driven.DeviceIdentity
}

// NewArticleStore creates a new device-local article store.
func NewArticleStore(kv driven.KeyValueStore, identity driven.DeviceIdentity) *ArticleStore {
	return &ArticleStore{kv: kv, identity: identity}
}

// storedArticle is the serialised collection element.
type storedArticle struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Summary              string    `json:"summary"`
	Content              string    `json:"content"`
	Source               string    `json:"source"`
	Author               string    `json:"author,omitempty"`
	PublishedAt          time.Time `json:"published_at"`
	ImageURL             string    `json:"image_url,omitempty"`
	Sentiment            string    `json:"sentiment"`
	SentimentExplanation string    `json:"sentiment_explanation"`

	Interaction domain.Interaction `json:"interaction"`
}

// List returns the device's articles in stored order, newest first.
func (s *ArticleStore) List(ctx context.Context) ([]domain.FeedArticle, error) {
	if s.kv == nil {
		return nil, domain.ErrNotImplemented
	}

	stored, _, err := s.load()
	if err != nil {
		return nil, err
	}

	articles := make([]domain.FeedArticle, 0, len(stored))
	for _, rec := range stored {
		articles = append(articles, rec.toDomain())
	}
	return articles, nil
}

// Append inserts the article at the head of the collection.
func (s *ArticleStore) Append(ctx context.Context, article domain.FeedArticle) error {
	if s.kv == nil {
		return domain.ErrNotImplemented
	}

	stored, key, err := s.load()
	if err != nil {
		return err
	}

	updated := make([]storedArticle, 0, len(stored)+1)
	updated = append(updated, fromDomain(article))
	updated = append(updated, stored...)

	return s.save(key, updated)
}

// SetInteraction merges the update into the named article's interaction.
func (s *ArticleStore) SetInteraction(ctx context.Context, id string, upd domain.InteractionUpdate) error {
	if s.kv == nil {
		return domain.ErrNotImplemented
	}

	stored, key, err := s.load()
	if err != nil {
		return err
	}

	for i := range stored {
		if stored[i].ID == id {
			stored[i].Interaction = stored[i].Interaction.Apply(upd)
			return s.save(key, stored)
		}
	}

	return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
}

// Get returns the article with the given id.
func (s *ArticleStore) Get(ctx context.Context, id string) (*domain.FeedArticle, error) {
	if s.kv == nil {
		return nil, domain.ErrNotImplemented
	}

	stored, _, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range stored {
		if rec.ID == id {
			article := rec.toDomain()
			return &article, nil
		}
	}

	return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
}

// load reads and decodes the device's collection, returning the storage
// key so mutations write back under the same namespace.
func (s *ArticleStore) load() ([]storedArticle, string, error) {
	key, err := s.collectionKey()
	if err != nil {
		return nil, "", err
	}

	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read article collection: %w", err)
	}
	if !ok {
		return nil, key, nil
	}

	var stored []storedArticle
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, "", fmt.Errorf("failed to decode article collection: %w", err)
	}
	return stored, key, nil
}

// save encodes and rewrites the whole collection.
func (s *ArticleStore) save(key string, stored []storedArticle) error {
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode article collection: %w", err)
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("failed to write article collection: %w", err)
	}
	return nil
}

func (s *ArticleStore) collectionKey() (string, error) {
	deviceID, err := s.identity.DeviceID()
	if err != nil {
		return "", fmt.Errorf("failed to resolve device id: %w", err)
	}
	return collectionKeyPrefix + deviceID, nil
}

func fromDomain(article domain.FeedArticle) storedArticle {
	return storedArticle{
		ID:                   article.ID,
		Title:                article.Title,
		Summary:              article.Summary,
		Content:              article.Content,
		Source:               article.Source,
		Author:               article.Author,
		PublishedAt:          article.PublishedAt,
		ImageURL:             article.ImageURL,
		Sentiment:            string(article.Sentiment),
		SentimentExplanation: article.SentimentExplanation,
		Interaction:          article.Interaction,
	}
}

func (r storedArticle) toDomain() domain.FeedArticle {
	return domain.FeedArticle{
		Article: domain.Article{
			ID:                   r.ID,
			Origin:               domain.OriginForID(r.ID),
			Title:                r.Title,
			Summary:              r.Summary,
			Content:              r.Content,
			Source:               r.Source,
			Author:               r.Author,
			PublishedAt:          r.PublishedAt,
			ImageURL:             r.ImageURL,
			Sentiment:            domain.Sentiment(r.Sentiment),
			SentimentExplanation: r.SentimentExplanation,
		},
		Interaction: r.Interaction,
	}
}
