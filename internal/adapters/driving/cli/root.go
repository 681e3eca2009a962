// Package cli provides the cobra command tree of sercha-bridge.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driven/fetch"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-bridge/internal/core/services"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services shared by the commands. Tests assign them directly; otherwise
// they are built on first use.
var (
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
	exchangeService driving.Exchanger
	newFetcher      = fetch.New
)

var rootCmd = &cobra.Command{
	Use:   "sercha-bridge",
	Short: "Bridge search requests from an application port to HTTP",
	Long: `sercha-bridge forwards search requests to an HTTP endpoint and hands the
decoded JSON response back to the application that asked.

Each request is a URL. The bridge issues exactly one GET, decodes the body
as JSON and publishes the value. Failed requests publish nothing.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"directory holding config.toml (default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the config file and use defaults")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup configures logging and the settings service.
// The fetcher is created lazily so config commands keep working when the
// stored fetcher kind is invalid.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if configStore == nil {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		configStore = store
	}
	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}
	return nil
}

func openConfigStore() (driven.ConfigStore, error) {
	if noConfig {
		return memory.NewConfigStore(nil), nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return store, nil
}

// currentSettings returns the settings, or defaults when no service is set.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

// exchanger returns the exchange service, creating it from the settings.
func exchanger() (driving.Exchanger, error) {
	if exchangeService != nil {
		return exchangeService, nil
	}

	settings, err := currentSettings()
	if err != nil {
		return nil, err
	}
	fetcher, err := newFetcher(settings)
	if err != nil {
		return nil, err
	}
	exchangeService = services.NewExchangeService(fetcher)
	return exchangeService, nil
}

// errNoResponse is returned when the bridge published nothing for a query.
var errNoResponse = errors.New("no response")
