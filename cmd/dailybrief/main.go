// Command dailybrief is the terminal news reader.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/clipboard"
	configfile "github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/config/file"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/graphql"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/localstore"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/nhost"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/storage/sqlite"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/workflow"
	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driving/cli"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/services"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settings := configfile.NewSettings(configStore)

	store, err := sqlite.NewStore(settings.DataDir())
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	defer store.Close()

	identity := localstore.NewIdentityProvider(store)
	articles := localstore.NewArticleStore(store, identity)

	// Backend adapters come up only when configured; services guard the
	// nil ports so local-only use keeps working.
	var authProvider driven.AuthProvider
	if url := settings.AuthURL(); url != "" {
		authService, err := nhost.NewAuthService(nhost.Config{BaseURL: url})
		if err != nil {
			return fmt.Errorf("configure auth: %w", err)
		}
		authProvider = authService
	} else {
		logger.Debug("No auth URL configured; account commands disabled")
	}

	sessionManager := services.NewSessionManager(authProvider, store)

	var (
		remote driven.RemoteArticleSource
		prefs  driven.PreferenceStore
	)
	if endpoint := settings.GraphQLEndpoint(); endpoint != "" {
		client, err := graphql.NewClient(graphql.Config{
			Endpoint: endpoint,
			Token:    sessionToken(sessionManager),
		})
		if err != nil {
			return fmt.Errorf("configure backend: %w", err)
		}
		remote = graphql.NewArticleSource(client)
		prefs = graphql.NewPreferenceStore(client)
	} else {
		logger.Debug("No GraphQL endpoint configured; backend articles disabled")
	}

	var enricher driven.Enricher
	if url := settings.WebhookURL(); url != "" {
		workflowEnricher, err := workflow.NewEnricher(workflow.Config{WebhookURL: url})
		if err != nil {
			return fmt.Errorf("configure enrichment: %w", err)
		}
		enricher = workflowEnricher
	}

	feedService := services.NewFeedService(articles, remote, clipboard.NewWriter(), settings.ShareBaseURL())
	authoringService := services.NewAuthoringService(articles)
	preferencesService := services.NewPreferencesService(prefs)

	cli.SetVersion(Version)
	cli.SetConfigStore(configStore)
	cli.SetServices(feedService, authoringService, preferencesService, sessionManager, enricher)

	return cli.Execute()
}

// sessionToken adapts the session service into the GraphQL client's token
// lookup. Requests go out unauthenticated when no session exists; any
// other session failure is logged before falling back, so a later
// authorization error is not the only symptom.
func sessionToken(sessions driving.SessionService) graphql.TokenFunc {
	return func(ctx context.Context) (string, error) {
		session, err := sessions.Current(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				logger.Warn("Session lookup failed; sending request unauthenticated: %v", err)
			}
			return "", nil
		}
		return session.AccessToken, nil
	}
}
