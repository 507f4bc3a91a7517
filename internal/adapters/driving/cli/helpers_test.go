package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// Test fixtures shared across command tests.

var testFeed = []domain.FeedArticle{
	{
		Article: domain.Article{
			ID:          "local-1700000000000-ab12cd34",
			Origin:      domain.OriginLocal,
			Title:       "My Local Article",
			Summary:     "Written on this device.",
			Content:     "Full local body.",
			Source:      "My Notes",
			PublishedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Sentiment:   domain.SentimentNeutral,
		},
		Interaction: domain.Interaction{IsRead: true},
	},
	{
		Article: domain.Article{
			ID:          "a1",
			Origin:      domain.OriginRemote,
			Title:       "Remote Headline",
			Summary:     "From the backend.",
			Source:      "Wire",
			PublishedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			URL:         "https://example.com/a1",
			Sentiment:   domain.SentimentPositive,
		},
	},
}

type mockFeedService struct {
	loadErr error
}

func (m *mockFeedService) Load(_ context.Context, _ string, _ int) ([]domain.FeedArticle, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return testFeed, nil
}

func (m *mockFeedService) Saved(_ context.Context, _ string) ([]domain.FeedArticle, error) {
	var saved []domain.FeedArticle
	for _, item := range testFeed {
		if item.Interaction.IsSaved {
			saved = append(saved, item)
		}
	}
	return saved, nil
}

func (m *mockFeedService) Get(_ context.Context, _, articleID string) (*domain.FeedArticle, error) {
	for _, item := range testFeed {
		if item.ID == articleID {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
}

func (m *mockFeedService) ToggleRead(_ context.Context, _ string, item domain.FeedArticle) (domain.FeedArticle, error) {
	item.Interaction.IsRead = !item.Interaction.IsRead
	return item, nil
}

func (m *mockFeedService) ToggleSave(_ context.Context, _ string, item domain.FeedArticle) (domain.FeedArticle, error) {
	item.Interaction.IsSaved = !item.Interaction.IsSaved
	if item.Interaction.IsSaved {
		item.Interaction.IsRead = true
	}
	return item, nil
}

func (m *mockFeedService) Share(_ context.Context, item domain.FeedArticle) (string, error) {
	if item.URL != "" {
		return item.URL, nil
	}
	return "https://app.example.com/article/" + item.ID, nil
}

type mockAuthoringService struct{}

func (m *mockAuthoringService) Submit(_ context.Context, draft domain.ArticleDraft, authorFallback string) (*domain.FeedArticle, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	author := draft.Author
	if author == "" {
		author = authorFallback
	}
	return &domain.FeedArticle{
		Article: domain.Article{
			ID:     "local-1700000000000-ab12cd34",
			Origin: domain.OriginLocal,
			Title:  draft.Title,
			Source: draft.Source,
			Author: author,
		},
		Interaction: domain.Interaction{IsRead: true},
	}, nil
}

type mockPreferencesService struct {
	saved *domain.Preferences
}

func (m *mockPreferencesService) Get(_ context.Context, userID string) (*domain.Preferences, error) {
	if m.saved != nil {
		return m.saved, nil
	}
	return &domain.Preferences{UserID: userID, Topics: []string{"technology"}}, nil
}

func (m *mockPreferencesService) Save(_ context.Context, prefs domain.Preferences) (*domain.Preferences, error) {
	m.saved = &prefs
	return &prefs, nil
}

type mockSessionService struct {
	session *domain.Session
}

func (m *mockSessionService) SignUp(_ context.Context, _, _ string) error { return nil }

func (m *mockSessionService) SignIn(_ context.Context, email, _ string) (*domain.Session, error) {
	m.session = &domain.Session{User: domain.User{ID: "user-1", Email: email, EmailVerified: true}}
	return m.session, nil
}

func (m *mockSessionService) SignOut(_ context.Context) error {
	m.session = nil
	return nil
}

func (m *mockSessionService) Current(_ context.Context) (*domain.Session, error) {
	if m.session == nil {
		return nil, domain.ErrUnauthenticated
	}
	return m.session, nil
}

func (m *mockSessionService) Subscribe(_ func(*domain.Session)) {}

func (m *mockSessionService) ResendVerificationEmail(_ context.Context, _ string) error { return nil }

type mockEnricher struct{}

func (m *mockEnricher) Enrich(_ context.Context, _, _ string) (*domain.Enrichment, error) {
	return &domain.Enrichment{
		Summary:              "Mock summary.",
		Sentiment:            domain.SentimentNeutral,
		SentimentExplanation: "Mock explanation.",
	}, nil
}

// setupTestServices wires mock services with a signed-in session and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldFeed := feedService
	oldAuthoring := authoringService
	oldPreferences := preferencesService
	oldSession := sessionService
	oldEnrichment := enrichmentService

	feedService = &mockFeedService{}
	authoringService = &mockAuthoringService{}
	preferencesService = &mockPreferencesService{}
	sessionService = &mockSessionService{
		session: &domain.Session{User: domain.User{ID: "user-1", Email: "pat@example.com", EmailVerified: true}},
	}
	enrichmentService = &mockEnricher{}

	return func() {
		feedService = oldFeed
		authoringService = oldAuthoring
		preferencesService = oldPreferences
		sessionService = oldSession
		enrichmentService = oldEnrichment
	}
}
