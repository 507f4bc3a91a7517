package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestFeedService(local *fakeLocalStore, remote *fakeRemoteSource) (*FeedService, *fakeClipboard) {
	clip := &fakeClipboard{}
	return NewFeedService(local, remote, clip, "https://app.example.com"), clip
}

func TestFeedService_LoadMergesNewestFirst(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{
		localItem("local-2", baseTime.Add(2*time.Hour)),
		localItem("local-1", baseTime),
	}}
	remote := newFakeRemoteSource(
		remoteItem("r1", baseTime.Add(3*time.Hour)),
		remoteItem("r2", baseTime.Add(time.Hour)),
	)
	service, _ := newTestFeedService(local, remote)

	feed, err := service.Load(context.Background(), "user-1", 50)

	require.NoError(t, err)
	require.Len(t, feed, 4)
	assert.Equal(t, "r1", feed[0].ID)
	assert.Equal(t, "local-2", feed[1].ID)
	assert.Equal(t, "r2", feed[2].ID)
	assert.Equal(t, "local-1", feed[3].ID)
}

func TestFeedService_LoadTieKeepsLocalFirst(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	service, _ := newTestFeedService(local, remote)

	feed, err := service.Load(context.Background(), "user-1", 50)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	// Equal timestamps keep concatenation order: local ahead of remote.
	assert.Equal(t, "local-1", feed[0].ID)
	assert.Equal(t, "r1", feed[1].ID)
}

func TestFeedService_LoadRemoteFailureSurfaces(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	remote := newFakeRemoteSource()
	remote.fetchErr = &domain.TransportError{Op: "fetch articles", Err: assert.AnError}
	service, _ := newTestFeedService(local, remote)

	_, err := service.Load(context.Background(), "user-1", 50)

	require.Error(t, err)
	assert.True(t, domain.IsTransport(err))
}

func TestFeedService_SavedMergesBothTiers(t *testing.T) {
	savedLocal := localItem("local-1", baseTime.Add(time.Hour))
	savedLocal.Interaction.IsSaved = true
	unsavedLocal := localItem("local-2", baseTime.Add(2*time.Hour))

	savedRemote := remoteItem("r1", baseTime)
	savedRemote.Interaction = domain.Interaction{IsRead: true, IsSaved: true}

	local := &fakeLocalStore{articles: []domain.FeedArticle{unsavedLocal, savedLocal}}
	remote := newFakeRemoteSource(savedRemote, remoteItem("r2", baseTime.Add(3*time.Hour)))
	service, _ := newTestFeedService(local, remote)

	saved, err := service.Saved(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "local-1", saved[0].ID)
	assert.Equal(t, "r1", saved[1].ID)
}

func TestFeedService_GetDispatchesOnOrigin(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	service, _ := newTestFeedService(local, remote)
	ctx := context.Background()

	localGot, err := service.Get(ctx, "user-1", "local-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OriginLocal, localGot.Origin)

	remoteGot, err := service.Get(ctx, "user-1", "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.OriginRemote, remoteGot.Origin)
}

func TestFeedService_ToggleReadLocal(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	remote := newFakeRemoteSource()
	service, _ := newTestFeedService(local, remote)
	ctx := context.Background()

	item, err := service.Get(ctx, "user-1", "local-1")
	require.NoError(t, err)
	require.True(t, item.Interaction.IsRead)

	updated, err := service.ToggleRead(ctx, "user-1", *item)
	require.NoError(t, err)
	assert.False(t, updated.Interaction.IsRead)

	// Persisted, not just returned.
	stored, err := local.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.False(t, stored.Interaction.IsRead)
}

func TestFeedService_ToggleReadIsSelfInverse(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	remote := newFakeRemoteSource()
	service, _ := newTestFeedService(local, remote)
	ctx := context.Background()

	item, err := service.Get(ctx, "user-1", "local-1")
	require.NoError(t, err)
	before := item.Interaction.IsRead

	once, err := service.ToggleRead(ctx, "user-1", *item)
	require.NoError(t, err)
	twice, err := service.ToggleRead(ctx, "user-1", once)
	require.NoError(t, err)

	assert.Equal(t, before, twice.Interaction.IsRead)
}

func TestFeedService_ToggleReadRemoteUpserts(t *testing.T) {
	local := &fakeLocalStore{}
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	service, _ := newTestFeedService(local, remote)
	ctx := context.Background()

	item, err := service.Get(ctx, "user-1", "r1")
	require.NoError(t, err)

	updated, err := service.ToggleRead(ctx, "user-1", *item)
	require.NoError(t, err)
	assert.True(t, updated.Interaction.IsRead)
	assert.Equal(t, true, remote.readUpserts["r1"])
}

func TestFeedService_ToggleSaveMarksRead(t *testing.T) {
	local := &fakeLocalStore{}
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	service, _ := newTestFeedService(local, remote)
	ctx := context.Background()

	item, err := service.Get(ctx, "user-1", "r1")
	require.NoError(t, err)
	require.False(t, item.Interaction.IsRead)

	updated, err := service.ToggleSave(ctx, "user-1", *item)

	require.NoError(t, err)
	assert.True(t, updated.Interaction.IsSaved)
	// Saving implies reading, locally and on the wire.
	assert.True(t, updated.Interaction.IsRead)
	assert.Equal(t, true, remote.savedUpserts["r1"])
	assert.Equal(t, true, remote.saveReads["r1"])
}

func TestFeedService_UnsaveKeepsRead(t *testing.T) {
	saved := remoteItem("r1", baseTime)
	saved.Interaction = domain.Interaction{IsRead: true, IsSaved: true}

	local := &fakeLocalStore{}
	remote := newFakeRemoteSource(saved)
	service, _ := newTestFeedService(local, remote)

	updated, err := service.ToggleSave(context.Background(), "user-1", saved)

	require.NoError(t, err)
	assert.False(t, updated.Interaction.IsSaved)
	assert.True(t, updated.Interaction.IsRead)
	// The upsert carries the current read value so it is not clobbered.
	assert.Equal(t, false, remote.savedUpserts["r1"])
	assert.Equal(t, true, remote.saveReads["r1"])
}

func TestFeedService_ShareLocalBuildsLink(t *testing.T) {
	local := &fakeLocalStore{articles: []domain.FeedArticle{localItem("local-1", baseTime)}}
	service, clip := newTestFeedService(local, newFakeRemoteSource())

	item, err := service.Get(context.Background(), "user-1", "local-1")
	require.NoError(t, err)

	url, err := service.Share(context.Background(), *item)

	require.NoError(t, err)
	assert.Equal(t, "https://app.example.com/article/local-1", url)
	assert.Equal(t, url, clip.text)
}

func TestFeedService_ShareRemoteUsesArticleURL(t *testing.T) {
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	service, clip := newTestFeedService(&fakeLocalStore{}, remote)

	item, err := service.Get(context.Background(), "user-1", "r1")
	require.NoError(t, err)

	url, err := service.Share(context.Background(), *item)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/r1", url)
	assert.Equal(t, url, clip.text)
}

func TestFeedService_ShareClipboardFailureStillReturnsURL(t *testing.T) {
	remote := newFakeRemoteSource(remoteItem("r1", baseTime))
	clip := &fakeClipboard{err: domain.ErrClipboardUnavailable}
	service := NewFeedService(&fakeLocalStore{}, remote, clip, "https://app.example.com")

	item, err := service.Get(context.Background(), "user-1", "r1")
	require.NoError(t, err)

	url, err := service.Share(context.Background(), *item)

	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
	assert.Equal(t, "https://example.com/r1", url)
}
