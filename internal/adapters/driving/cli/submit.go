package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// Flags for submit.
var (
	submitTitle    string
	submitContent  string
	submitSource   string
	submitAuthor   string
	submitImageURL string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Author a new article on this device",
	Long: `Creates a device-authored article. The article stays on this device;
its summary is derived from the first part of the content and its
sentiment is neutral. Missing required fields are prompted for.

Examples:
  # Fully specified
  dailybrief submit --title "Headline" --source "My Blog" --content "Body text"

  # Prompt for whatever is missing
  dailybrief submit --title "Headline"`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitTitle, "title", "", "article headline")
	submitCmd.Flags().StringVar(&submitContent, "content", "", "full article body")
	submitCmd.Flags().StringVar(&submitSource, "source", "", "publication or outlet name")
	submitCmd.Flags().StringVar(&submitAuthor, "author", "", "byline (defaults to your account email)")
	submitCmd.Flags().StringVar(&submitImageURL, "image-url", "", "optional illustration URL")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	if authoringService == nil {
		return errors.New("authoring service not configured")
	}

	ctx := context.Background()

	draft := domain.ArticleDraft{
		Title:    submitTitle,
		Content:  submitContent,
		Source:   submitSource,
		Author:   submitAuthor,
		ImageURL: submitImageURL,
	}

	// Prompt for missing required fields before validating.
	reader := bufio.NewReader(os.Stdin)
	if draft.Title == "" {
		cmd.Print("Title: ")
		draft.Title = readLine(reader)
	}
	if draft.Source == "" {
		cmd.Print("Source: ")
		draft.Source = readLine(reader)
	}
	if draft.Content == "" {
		cmd.Print("Content: ")
		draft.Content = readLine(reader)
	}

	// Byline falls back to the signed-in account; authoring itself does
	// not require a session.
	authorFallback := "anonymous"
	if sessionService != nil {
		if session, err := sessionService.Current(ctx); err == nil {
			authorFallback = session.User.Email
		}
	}

	article, err := authoringService.Submit(ctx, draft, authorFallback)
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			return fmt.Errorf("cannot submit: %s", validation.Error())
		}
		return fmt.Errorf("failed to submit article: %w", err)
	}

	cmd.Printf("Article created: %s\n", article.ID)
	cmd.Printf("  %s - %s\n", article.Title, article.Source)
	return nil
}
