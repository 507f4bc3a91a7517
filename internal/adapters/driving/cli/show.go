package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [article-id]",
	Short: "Show a single article",
	Long: `Shows the full detail of one article, looked up in the tier that owns
it: ids starting with "local-" resolve on this device, everything else
against the backend.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the article as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, item, err := resolveArticle(ctx, args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal article: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(item.Title)
	cmd.Printf("Source: %s\n", item.Source)
	if item.Author != "" {
		cmd.Printf("Author: %s\n", item.Author)
	}
	if !item.PublishedAt.IsZero() {
		cmd.Printf("Published: %s\n", item.PublishedAt.Format("2006-01-02 15:04"))
	}
	if item.URL != "" {
		cmd.Printf("URL: %s\n", item.URL)
	}
	cmd.Printf("Read: %t  Saved: %t\n", item.Interaction.IsRead, item.Interaction.IsSaved)
	if item.Sentiment != "" {
		cmd.Printf("Sentiment: %s", item.Sentiment)
		if item.SentimentExplanation != "" {
			cmd.Printf(" (%s)", item.SentimentExplanation)
		}
		cmd.Println()
	}
	cmd.Println()
	if item.Content != "" {
		cmd.Println(item.Content)
	} else if item.Summary != "" {
		cmd.Println(item.Summary)
	}

	return nil
}
