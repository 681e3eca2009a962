package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bridge/internal/core/services"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
	"github.com/custodia-labs/sercha-bridge/internal/runtime"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

The UI owns one application runtime for its whole lifetime. Each query is
sent on the searchRequests port; whatever the bridge publishes on
searchResponses replaces the current view. Failed requests publish nothing,
so the status bar keeps showing "Waiting".

Changes to config.toml are picked up while the UI is running.

Controls:
  Enter    - Send query
  n, /     - New query
  ↑/k, ↓/j - Navigate repositories
  Tab      - Toggle raw JSON
  ?        - Help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			if logger.IsVerbose() {
				fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			} else {
				fmt.Fprintln(os.Stderr, "Run with --verbose for a stack trace.")
			}
		}
	}()

	ctx, cancel := context.WithCancel(cmdContext(cmd))
	defer cancel()

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	rt := runtime.New()
	bridges := &bridgeSwitch{ctx: ctx, rt: rt}
	if err := bridges.attach(settings); err != nil {
		return err
	}
	defer bridges.detach()

	app, err := tui.NewApp(&tui.Ports{
		Requests:  rt.SearchRequests(),
		Responses: rt.SearchResponses(),
		Settings:  settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if store, ok := configStore.(driven.WatchableConfigStore); ok {
		go func() {
			err := store.Watch(ctx, func() {
				p.Send(bridges.reload())
			})
			if err != nil {
				logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// bridgeSwitch keeps one bridge attached to the runtime and replaces it when
// the fetcher settings change.
type bridgeSwitch struct {
	ctx context.Context
	rt  *runtime.Runtime

	mu      sync.Mutex
	bridge  *services.SearchBridge
	current domain.AppSettings
}

func (s *bridgeSwitch) attach(settings *domain.AppSettings) error {
	fetcher, err := newFetcher(settings)
	if err != nil {
		return err
	}
	bridge := services.NewSearchBridge(fetcher)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bridge != nil {
		s.bridge.Detach()
	}
	if err := bridge.Attach(s.ctx, s.rt.SearchRequests(), s.rt.SearchResponses()); err != nil {
		return err
	}
	s.bridge = bridge
	s.current = *settings
	return nil
}

func (s *bridgeSwitch) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bridge != nil {
		s.bridge.Detach()
		s.bridge = nil
	}
}

// reload re-reads the settings and swaps the bridge if its fetcher changed.
func (s *bridgeSwitch) reload() messages.SettingsReloaded {
	settings, err := currentSettings()
	if err != nil {
		return messages.SettingsReloaded{Err: err}
	}

	s.mu.Lock()
	changed := s.current.Bridge != settings.Bridge || s.current.GitHub != settings.GitHub
	s.mu.Unlock()

	if changed {
		if err := s.attach(settings); err != nil {
			return messages.SettingsReloaded{Err: err}
		}
		logger.Info("bridge fetcher replaced", "fetcher", settings.Bridge.Fetcher)
	}
	return messages.SettingsReloaded{Settings: settings}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
