package file

import "github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"

// Configuration keys.
const (
	KeyGraphQLEndpoint = "api.graphql_endpoint"
	KeyAuthURL         = "auth.url"
	KeyWebhookURL      = "enrichment.webhook_url"
	KeyShareBaseURL    = "share.base_url"
	KeyFeedLimit       = "feed.limit"
	KeyDataDir         = "storage.data_dir"
)

// Defaults for unset keys.
const (
	DefaultShareBaseURL = "https://app.dailybrief.example"
	DefaultFeedLimit    = 50
)

// Settings is a typed view over the config store for the keys the
// application reads at startup.
type Settings struct {
	store driven.ConfigStore
}

// NewSettings wraps a config store.
func NewSettings(store driven.ConfigStore) *Settings {
	return &Settings{store: store}
}

// GraphQLEndpoint returns the backend GraphQL endpoint URL.
func (s *Settings) GraphQLEndpoint() string {
	return s.store.GetString(KeyGraphQLEndpoint)
}

// AuthURL returns the auth service root URL.
func (s *Settings) AuthURL() string {
	return s.store.GetString(KeyAuthURL)
}

// WebhookURL returns the enrichment workflow webhook URL.
func (s *Settings) WebhookURL() string {
	return s.store.GetString(KeyWebhookURL)
}

// ShareBaseURL returns the base URL used to build share links for
// device-authored articles.
func (s *Settings) ShareBaseURL() string {
	if url := s.store.GetString(KeyShareBaseURL); url != "" {
		return url
	}
	return DefaultShareBaseURL
}

// FeedLimit returns the maximum number of backend articles per fetch.
func (s *Settings) FeedLimit() int {
	if limit := s.store.GetInt(KeyFeedLimit); limit > 0 {
		return limit
	}
	return DefaultFeedLimit
}

// DataDir returns the local database directory, empty for the default.
func (s *Settings) DataDir() string {
	return s.store.GetString(KeyDataDir)
}
