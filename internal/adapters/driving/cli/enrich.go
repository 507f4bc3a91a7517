package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Flags for enrich.
var (
	enrichTitle   string
	enrichContent string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run AI enrichment on article text",
	Long: `Submits article text to the enrichment workflow and prints the summary
and sentiment it produces. Useful for previewing what the pipeline would
attach to an article; device-authored articles are never enriched
automatically.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVar(&enrichTitle, "title", "", "article headline (required)")
	enrichCmd.Flags().StringVar(&enrichContent, "content", "", "article body (required)")
	_ = enrichCmd.MarkFlagRequired("title")
	_ = enrichCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	if enrichmentService == nil {
		return errors.New("enrichment service not configured")
	}

	enrichment, err := enrichmentService.Enrich(context.Background(), enrichTitle, enrichContent)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	cmd.Printf("Summary: %s\n", enrichment.Summary)
	cmd.Printf("Sentiment: %s\n", enrichment.Sentiment)
	if enrichment.SentimentExplanation != "" {
		cmd.Printf("Explanation: %s\n", enrichment.SentimentExplanation)
	}
	return nil
}
