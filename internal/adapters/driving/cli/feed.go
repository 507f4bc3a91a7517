package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

var (
	feedLimit      int
	feedJSON       bool
	feedSentiments []string
	feedUnread     bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the merged article feed",
	Long: `Fetches backend articles and device-authored articles, merges them
into one feed ordered by publish time (newest first), and prints it.
Unread articles are marked with *.`,
	RunE: runFeed,
}

func init() {
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 0, "maximum number of backend articles (0 uses the configured limit)")
	feedCmd.Flags().BoolVar(&feedJSON, "json", false, "output the feed as JSON")
	feedCmd.Flags().StringSliceVar(&feedSentiments, "sentiment", nil, "keep only these sentiments (positive, negative, neutral)")
	feedCmd.Flags().BoolVar(&feedUnread, "unread", false, "keep only unread articles")
	rootCmd.AddCommand(feedCmd)
}

func runFeed(cmd *cobra.Command, _ []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	opts, err := sentimentFilter(feedSentiments)
	if err != nil {
		return err
	}

	feed, err := feedService.Load(ctx, userID, feedLimit)
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	feed = domain.FilterArticles(feed, opts)
	if feedUnread {
		unread := make([]domain.FeedArticle, 0, len(feed))
		for _, item := range feed {
			if !item.Interaction.IsRead {
				unread = append(unread, item)
			}
		}
		feed = unread
	}

	if feedJSON {
		return outputFeedJSON(cmd, feed)
	}

	printFeed(cmd, feed)
	return nil
}

// sentimentFilter validates the --sentiment values into filter options.
func sentimentFilter(values []string) (domain.FilterOptions, error) {
	var opts domain.FilterOptions
	for _, value := range values {
		sentiment := domain.Sentiment(value)
		if !sentiment.IsValid() {
			return opts, fmt.Errorf("invalid sentiment %q: %w", value, domain.ErrInvalidInput)
		}
		opts.Sentiments = append(opts.Sentiments, sentiment)
	}
	return opts, nil
}

func outputFeedJSON(cmd *cobra.Command, feed []domain.FeedArticle) error {
	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feed: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
