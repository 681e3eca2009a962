// Package search provides the main view of the TUI: a query input, the
// repositories projected from the latest response and the raw JSON value.
package search

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/components/rawview"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

// SendFunc publishes a query URL on the application's request port.
type SendFunc func(url string)

// View is the search view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.RepoList
	raw       *rawview.View
	statusbar *status.Bar

	send     SendFunc
	settings domain.AppSettings

	lastURL    string
	response   any
	received   bool
	err        error
	width      int
	height     int
	ready      bool
	focusInput bool
	showRaw    bool
}

// NewView creates a search view that sends queries through send.
func NewView(s *styles.Styles, km *keymap.KeyMap, send SendFunc, settings *domain.AppSettings) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		list:       list.NewRepoList(s),
		raw:        rawview.New(s),
		statusbar:  status.NewBar(s, km),
		send:       send,
		settings:   domain.DefaultAppSettings(),
		width:      80,
		height:     24,
		focusInput: true,
	}
	if settings != nil {
		v.settings = *settings
	}
	v.statusbar.SetFetcher(v.settings.Bridge.Fetcher.String())
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchRequested:
		v.lastURL = msg.URL
		return v, nil

	case messages.ResponseReceived:
		v.handleResponse(msg.Value)
		return v, nil

	case messages.SettingsReloaded:
		v.handleSettings(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.submit()
		case tea.KeyEsc:
			if v.received {
				v.blurInput()
			}
			return v, nil
		default:
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	case keymap.Matches(keyStr, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(keyStr, v.keymap.NewSearch), keymap.Matches(keyStr, v.keymap.Back):
		v.focusInput = true
		return v, v.input.Focus()
	case keymap.Matches(keyStr, v.keymap.ToggleRaw):
		v.showRaw = !v.showRaw
		return v, nil
	}

	var cmd tea.Cmd
	if v.showRaw {
		v.raw, cmd = v.raw.Update(msg)
	} else {
		v.list, cmd = v.list.Update(msg)
	}
	return v, cmd
}

// submit sends the query URL for the current input. The bridge answers at
// most once and never reports failure, so the view simply waits.
func (v *View) submit() tea.Cmd {
	term := v.input.Value()
	if term == "" {
		return nil
	}

	url := v.settings.Search.QueryURL(term)
	v.err = nil
	v.statusbar.SetState(status.StateWaiting)
	v.statusbar.SetMessage("")
	v.blurInput()

	send := v.send
	return func() tea.Msg {
		if send != nil {
			send(url)
		}
		return messages.SearchRequested{Term: term, URL: url}
	}
}

func (v *View) handleResponse(value any) {
	repos := domain.RepositoriesFrom(value)

	v.response = value
	v.received = true
	v.err = nil
	v.list.SetRepositories(repos)
	v.raw.SetValue(value)
	v.showRaw = len(repos) == 0

	v.statusbar.SetState(status.StateReceived)
	v.statusbar.SetMessage("")
	v.statusbar.SetCounts(len(repos), domain.TotalCount(value))
}

func (v *View) handleSettings(msg messages.SettingsReloaded) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("reloading settings: " + msg.Err.Error())
		return
	}
	if msg.Settings == nil {
		return
	}

	v.settings = *msg.Settings
	v.statusbar.SetFetcher(v.settings.Bridge.Fetcher.String())
	if v.statusbar.State() == status.StateReady || v.statusbar.State() == status.StateError {
		v.err = nil
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("Settings reloaded")
	}
}

func (v *View) blurInput() {
	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("sercha-bridge"), "", v.input.View())

	if v.lastURL != "" {
		sections = append(sections, v.styles.Muted.Render("GET "+v.lastURL))
	}
	sections = append(sections, "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.showRaw {
		sections = append(sections, v.raw.View())
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	body := height - 9 // title, input, request line, status
	v.input.SetWidth(width)
	v.list.SetDimensions(width, body)
	v.raw.SetDimensions(width, body)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the input value.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// LastURL returns the last URL sent on the request port.
func (v *View) LastURL() string {
	return v.lastURL
}

// Response returns the latest received value and whether one arrived.
func (v *View) Response() (any, bool) {
	return v.response, v.received
}

// Repositories returns the repositories projected from the latest response.
func (v *View) Repositories() []domain.Repository {
	return v.list.Repositories()
}

// Settings returns the settings used to build query URLs.
func (v *View) Settings() domain.AppSettings {
	return v.settings
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// ShowingRaw returns whether the raw JSON view is active.
func (v *View) ShowingRaw() bool {
	return v.showRaw
}

// RawContent returns the rendered JSON of the latest response.
func (v *View) RawContent() string {
	return v.raw.Content()
}
