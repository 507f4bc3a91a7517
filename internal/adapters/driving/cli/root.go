// Package cli provides the command-line interface for dailybrief.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driving"
	"github.com/dailybrief-labs/dailybrief-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected at startup. Commands guard against nil services so a
// partially wired binary fails with a clear message instead of a panic.
var (
	feedService        driving.FeedService
	authoringService   driving.AuthoringService
	preferencesService driving.PreferencesService
	sessionService     driving.SessionService
	enrichmentService  driven.Enricher
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dailybrief",
	Short: "Read and author news articles from the terminal",
	Long: `dailybrief is a news reader that merges two article sources into one
feed: articles from the backend API and articles you author on this
device. Local articles never leave the device; interaction flags (read,
saved) are kept in the tier that owns the article.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the application services consumed by the commands.
func SetServices(
	feed driving.FeedService,
	authoring driving.AuthoringService,
	preferences driving.PreferencesService,
	session driving.SessionService,
	enrichment driven.Enricher,
) {
	feedService = feed
	authoringService = authoring
	preferencesService = preferences
	sessionService = session
	enrichmentService = enrichment
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
