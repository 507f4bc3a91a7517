package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage news preferences",
	Long:  `View and update the topics, keywords and preferred sources that steer which articles the backend surfaces.`,
	RunE:  runPrefsShow,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update preferences",
	Long: `Updates the preference record. Each flag replaces that list wholesale;
omitted flags leave the list unchanged.

Examples:
  dailybrief prefs set --topics technology,science
  dailybrief prefs set --keywords golang --sources "The Wire"`,
	RunE: runPrefsSet,
}

// Flags for prefs set.
var (
	prefsTopics   []string
	prefsKeywords []string
	prefsSources  []string
)

func init() {
	prefsSetCmd.Flags().StringSliceVar(&prefsTopics, "topics", nil, "topics to follow (comma-separated)")
	prefsSetCmd.Flags().StringSliceVar(&prefsKeywords, "keywords", nil, "keywords to track (comma-separated)")
	prefsSetCmd.Flags().StringSliceVar(&prefsSources, "sources", nil, "preferred sources (comma-separated)")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	prefs, err := preferencesService.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	printList := func(label string, values []string) {
		if len(values) == 0 {
			cmd.Printf("%s: (none)\n", label)
			return
		}
		cmd.Printf("%s: %s\n", label, strings.Join(values, ", "))
	}

	printList("Topics", prefs.Topics)
	printList("Keywords", prefs.Keywords)
	printList("Preferred sources", prefs.PreferredSources)
	return nil
}

func runPrefsSet(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	ctx := context.Background()
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	// Start from the stored record so omitted flags keep their lists.
	prefs, err := preferencesService.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	if cmd.Flags().Changed("topics") {
		prefs.Topics = prefsTopics
	}
	if cmd.Flags().Changed("keywords") {
		prefs.Keywords = prefsKeywords
	}
	if cmd.Flags().Changed("sources") {
		prefs.PreferredSources = prefsSources
	}

	saved, err := preferencesService.Save(ctx, *prefs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("cannot save preferences: %w", err)
		}
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	cmd.Println("Preferences saved.")
	if len(saved.Topics) > 0 {
		cmd.Printf("  Topics: %s\n", strings.Join(saved.Topics, ", "))
	}
	return nil
}
