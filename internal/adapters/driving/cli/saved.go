package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var savedJSON bool

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Show saved articles",
	Long:  `Shows articles saved for later from both tiers, newest first.`,
	RunE:  runSaved,
}

func init() {
	savedCmd.Flags().BoolVar(&savedJSON, "json", false, "output saved articles as JSON")
	rootCmd.AddCommand(savedCmd)
}

func runSaved(cmd *cobra.Command, _ []string) error {
	if feedService == nil {
		return errors.New("feed service not configured")
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	saved, err := feedService.Saved(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load saved articles: %w", err)
	}

	if savedJSON {
		return outputFeedJSON(cmd, saved)
	}

	printFeed(cmd, saved)
	return nil
}
