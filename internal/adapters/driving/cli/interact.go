package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

var readCmd = &cobra.Command{
	Use:   "read [article-id]",
	Short: "Toggle an article's read flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

var saveCmd = &cobra.Command{
	Use:   "save [article-id]",
	Short: "Toggle an article's saved flag",
	Long: `Toggles whether an article is saved for later. Saving an article also
marks it read.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var shareCmd = &cobra.Command{
	Use:   "share [article-id]",
	Short: "Copy an article's link to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(shareCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	userID, item, err := resolveArticle(ctx, args[0])
	if err != nil {
		return err
	}

	updated, err := feedService.ToggleRead(ctx, userID, *item)
	if err != nil {
		return fmt.Errorf("failed to update read flag: %w", err)
	}

	if updated.Interaction.IsRead {
		cmd.Printf("Marked read: %s\n", updated.Title)
	} else {
		cmd.Printf("Marked unread: %s\n", updated.Title)
	}
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	userID, item, err := resolveArticle(ctx, args[0])
	if err != nil {
		return err
	}

	updated, err := feedService.ToggleSave(ctx, userID, *item)
	if err != nil {
		return fmt.Errorf("failed to update saved flag: %w", err)
	}

	if updated.Interaction.IsSaved {
		cmd.Printf("Saved: %s\n", updated.Title)
	} else {
		cmd.Printf("Removed from saved: %s\n", updated.Title)
	}
	return nil
}

func runShare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, item, err := resolveArticle(ctx, args[0])
	if err != nil {
		return err
	}

	url, err := feedService.Share(ctx, *item)
	if err != nil {
		if errors.Is(err, domain.ErrClipboardUnavailable) {
			// Still useful without a clipboard: print the link.
			cmd.Printf("Clipboard unavailable; share link: %s\n", url)
			return nil
		}
		return fmt.Errorf("failed to share article: %w", err)
	}

	cmd.Printf("Copied to clipboard: %s\n", url)
	return nil
}
