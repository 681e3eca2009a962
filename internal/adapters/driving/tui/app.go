package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

// App is the main TUI model.
//
// Responses are pushed by the bridge from its own goroutines. The App keeps
// only the most recent undelivered one in inbox and hands it to bubbletea
// through waitForResponse.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	searchView *search.View

	inbox       chan any
	unsubscribe func()

	currentView messages.ViewType
	err         error
	width       int
	height      int
	ready       bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI and subscribes it to the response port.
// Call Close to remove the subscription.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	var settings *domain.AppSettings
	if ports.Settings != nil {
		s, err := ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("creating app: %w", err)
		}
		settings = s
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchView:  search.NewView(s, km, ports.Requests.Send, settings),
		inbox:       make(chan any, 1),
		currentView: messages.ViewSearch,
	}
	a.unsubscribe = ports.Responses.Subscribe(a.deliver)
	return a, nil
}

// WithContext sets the context that stops response delivery.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Close unsubscribes from the response port.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// deliver replaces any pending response with value.
func (a *App) deliver(value any) {
	for {
		select {
		case a.inbox <- value:
			return
		default:
		}
		select {
		case <-a.inbox:
			logger.Debug("tui: superseded undelivered response")
		default:
		}
	}
}

// waitForResponse blocks until a response is published or the context ends.
func (a *App) waitForResponse() tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-a.inbox:
			return messages.ResponseReceived{Value: v}
		case <-a.ctx.Done():
			return nil
		}
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sercha-bridge"),
		a.searchView.Init(),
		a.waitForResponse(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewSearch
			}
			return a, nil
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ResponseReceived:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.waitForResponse())

	case messages.SettingsReloaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.searchView.View()
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("Requests that fail are dropped silently; the status stays on Waiting."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
