package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dailybrief-labs/dailybrief-cli/internal/adapters/driven/config/file"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// configStore is injected at startup alongside the services.
var configStore driven.ConfigStore

// SetConfigStore injects the configuration store for the config command.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
	Long: `View and set client configuration values.

Keys:
  ` + file.KeyGraphQLEndpoint + `   backend GraphQL endpoint URL
  ` + file.KeyAuthURL + `                auth service root URL
  ` + file.KeyWebhookURL + `  enrichment workflow webhook URL
  ` + file.KeyShareBaseURL + `          base URL for local article share links
  ` + file.KeyFeedLimit + `              maximum backend articles per fetch
  ` + file.KeyDataDir + `        local database directory`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings := file.NewSettings(configStore)

	printValue := func(key, value string) {
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %s = %s\n", key, value)
	}

	cmd.Printf("Configuration (%s)\n", configStore.Path())
	printValue(file.KeyGraphQLEndpoint, settings.GraphQLEndpoint())
	printValue(file.KeyAuthURL, settings.AuthURL())
	printValue(file.KeyWebhookURL, settings.WebhookURL())
	printValue(file.KeyShareBaseURL, settings.ShareBaseURL())
	cmd.Printf("  %s = %d\n", file.KeyFeedLimit, settings.FeedLimit())
	printValue(file.KeyDataDir, settings.DataDir())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]

	// Numeric values are stored as integers so typed getters see them.
	var toStore any = value
	if n, err := strconv.Atoi(value); err == nil {
		toStore = n
	}

	if err := configStore.Set(key, toStore); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}
