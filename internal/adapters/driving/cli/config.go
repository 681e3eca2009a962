package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bridge/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change the settings stored in config.toml.

Keys:
  bridge.fetcher     http (plain GET, any status) or github (go-github client)
  bridge.user_agent  User-Agent header sent with every request
  github.base_url    API root for the github fetcher
  search.endpoint    prefix that search terms are appended to`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}
	for _, key := range settingsService.Keys() {
		cmd.Printf("%-18s %s\n", key, values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	values, err := settingValues()
	if err != nil {
		return err
	}
	value, ok := values[args[0]]
	if !ok {
		return fmt.Errorf("unknown key %q (see 'sercha-bridge config --help')", args[0])
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

// settingValues returns the effective value of every key, defaults included.
func settingValues() (map[string]string, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return map[string]string{
		services.KeyBridgeFetcher:   settings.Bridge.Fetcher.String(),
		services.KeyBridgeUserAgent: settings.Bridge.UserAgent,
		services.KeyGitHubBaseURL:   settings.GitHub.BaseURL,
		services.KeySearchEndpoint:  settings.Search.Endpoint,
	}, nil
}
