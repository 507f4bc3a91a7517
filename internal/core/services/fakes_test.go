package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// fakeLocalStore is an in-memory LocalArticleStore with head insertion.
type fakeLocalStore struct {
	articles []domain.FeedArticle
	listErr  error
}

func (f *fakeLocalStore) List(_ context.Context) ([]domain.FeedArticle, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.FeedArticle, len(f.articles))
	copy(out, f.articles)
	return out, nil
}

func (f *fakeLocalStore) Append(_ context.Context, article domain.FeedArticle) error {
	f.articles = append([]domain.FeedArticle{article}, f.articles...)
	return nil
}

func (f *fakeLocalStore) SetInteraction(_ context.Context, id string, upd domain.InteractionUpdate) error {
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles[i].Interaction = f.articles[i].Interaction.Apply(upd)
			return nil
		}
	}
	return fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
}

func (f *fakeLocalStore) Get(_ context.Context, id string) (*domain.FeedArticle, error) {
	for _, item := range f.articles {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("article %s: %w", id, domain.ErrNotFound)
}

// fakeRemoteSource is an in-memory RemoteArticleSource recording upserts.
type fakeRemoteSource struct {
	articles []domain.FeedArticle
	fetchErr error

	readUpserts  map[string]bool
	savedUpserts map[string]bool
	// saveReads records the read value sent alongside each saved upsert.
	saveReads map[string]bool
}

func newFakeRemoteSource(articles ...domain.FeedArticle) *fakeRemoteSource {
	return &fakeRemoteSource{
		articles:     articles,
		readUpserts:  make(map[string]bool),
		savedUpserts: make(map[string]bool),
		saveReads:    make(map[string]bool),
	}
}

func (f *fakeRemoteSource) Fetch(_ context.Context, _ string, limit int) ([]domain.FeedArticle, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if limit > 0 && limit < len(f.articles) {
		return f.articles[:limit], nil
	}
	return f.articles, nil
}

func (f *fakeRemoteSource) Saved(_ context.Context, _ string) ([]domain.FeedArticle, error) {
	var saved []domain.FeedArticle
	for _, item := range f.articles {
		if item.Interaction.IsSaved {
			saved = append(saved, item)
		}
	}
	return saved, nil
}

func (f *fakeRemoteSource) Get(_ context.Context, _, articleID string) (*domain.FeedArticle, error) {
	for _, item := range f.articles {
		if item.ID == articleID {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("article %s: %w", articleID, domain.ErrNotFound)
}

func (f *fakeRemoteSource) SetRead(_ context.Context, _, articleID string, read bool) error {
	f.readUpserts[articleID] = read
	return nil
}

func (f *fakeRemoteSource) SetSaved(_ context.Context, _, articleID string, saved, read bool) error {
	f.savedUpserts[articleID] = saved
	f.saveReads[articleID] = read
	return nil
}

// fakeClipboard records the last written text.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// fakeAuthProvider returns canned sessions.
type fakeAuthProvider struct {
	signInErr  error
	refreshErr error

	signOutCalls int
	resendCalls  int
}

func (f *fakeAuthProvider) session(suffix string) *domain.Session {
	return &domain.Session{
		User:         domain.User{ID: "user-1", Email: "pat@example.com", EmailVerified: true},
		AccessToken:  "access-" + suffix,
		RefreshToken: "refresh-" + suffix,
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
}

func (f *fakeAuthProvider) SignUp(_ context.Context, _, _ string) (*domain.Session, error) {
	return nil, nil
}

func (f *fakeAuthProvider) SignIn(_ context.Context, _, _ string) (*domain.Session, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.session("1"), nil
}

func (f *fakeAuthProvider) SignOut(_ context.Context, _ *domain.Session) error {
	f.signOutCalls++
	return nil
}

func (f *fakeAuthProvider) Refresh(_ context.Context, token string) (*domain.Session, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	session := f.session("2")
	session.RefreshToken = token + "-rotated"
	return session, nil
}

func (f *fakeAuthProvider) ResendVerificationEmail(_ context.Context, _ string) error {
	f.resendCalls++
	return nil
}

// fakePreferenceStore keeps one record per user.
type fakePreferenceStore struct {
	records map[string]*domain.Preferences
	nextID  int
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{records: make(map[string]*domain.Preferences), nextID: 1}
}

func (f *fakePreferenceStore) Get(_ context.Context, userID string) (*domain.Preferences, error) {
	record, ok := f.records[userID]
	if !ok {
		return nil, fmt.Errorf("preferences for user %s: %w", userID, domain.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (f *fakePreferenceStore) Save(_ context.Context, prefs domain.Preferences) (*domain.Preferences, error) {
	if prefs.ID == "" {
		prefs.ID = fmt.Sprintf("p%d", f.nextID)
		f.nextID++
	}
	stored := prefs
	f.records[prefs.UserID] = &stored
	return &prefs, nil
}

// Article fixtures.

func localItem(id string, published time.Time) domain.FeedArticle {
	return domain.FeedArticle{
		Article: domain.Article{
			ID:          id,
			Origin:      domain.OriginLocal,
			Title:       "Local " + id,
			Source:      "My Notes",
			PublishedAt: published,
			Sentiment:   domain.SentimentNeutral,
		},
		Interaction: domain.Interaction{IsRead: true},
	}
}

func remoteItem(id string, published time.Time) domain.FeedArticle {
	return domain.FeedArticle{
		Article: domain.Article{
			ID:          id,
			Origin:      domain.OriginRemote,
			Title:       "Remote " + id,
			Source:      "Wire",
			PublishedAt: published,
			URL:         "https://example.com/" + id,
			Sentiment:   domain.SentimentPositive,
		},
	}
}
