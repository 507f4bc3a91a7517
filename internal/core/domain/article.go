package domain

import (
	"strings"
	"time"
)

// LocalIDPrefix is the reserved id prefix for device-authored articles.
// It is the wire-level discriminant between the two storage tiers; inside
// the process the parsed Origin field is authoritative.
const LocalIDPrefix = "local-"

// Origin identifies which storage tier owns an article.
type Origin string

// Article origins.
const (
	// OriginLocal marks a device-authored article stored on this device.
	OriginLocal Origin = "local"

	// OriginRemote marks an article owned by the backend API.
	OriginRemote Origin = "remote"
)

// OriginForID derives the origin from an article id.
// Called once at the storage/transport boundary; everything downstream
// dispatches on the Origin field instead of re-parsing the id.
func OriginForID(id string) Origin {
	if strings.HasPrefix(id, LocalIDPrefix) {
		return OriginLocal
	}
	return OriginRemote
}

// Article represents a news article from either storage tier.
type Article struct {
	// ID is the unique identifier. Local-origin ids carry LocalIDPrefix.
	ID string

	// Origin identifies the owning storage tier, derived from ID at load.
	Origin Origin

	// Title is the headline.
	Title string

	// Summary is the enrichment summary shown in the feed. For local
	// articles it is derived from the first part of the content.
	Summary string

	// Content is the full article body. Empty for feed-level remote
	// articles, which only carry the processed summary.
	Content string

	// Source is the publication or outlet name.
	Source string

	// Author is the byline, empty when unknown.
	Author string

	// PublishedAt is the publication timestamp. Feed ordering key.
	PublishedAt time.Time

	// URL is the canonical article location. Empty for local articles,
	// whose share URL is constructed from the client's base URL.
	URL string

	// ImageURL is an optional illustration, empty when absent.
	ImageURL string

	// Sentiment is the enrichment sentiment tag.
	Sentiment Sentiment

	// SentimentExplanation is the enrichment's one-line justification.
	SentimentExplanation string
}

// IsLocal returns true for device-authored articles.
func (a *Article) IsLocal() bool {
	return a.Origin == OriginLocal
}

// FeedArticle pairs an article with the requesting user's (or device's)
// interaction record. It is the element type of the reconciled feed.
type FeedArticle struct {
	Article

	Interaction Interaction
}
