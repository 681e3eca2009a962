// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/styles"
)

// State represents what the status bar reports on its left side.
type State string

const (
	StateReady    State = "ready"
	StateWaiting  State = "waiting"
	StateReceived State = "received"
	StateError    State = "error"
	StateHelp     State = "help"
)

// Bar displays application status and keybinding hints.
//
// A request the bridge drops never produces a response, so StateWaiting is
// only left when the next response or error arrives.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	state      State
	message    string
	repoCount  int
	totalCount int64
	fetcher    string
	width      int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:     s,
		keymap:     km,
		state:      StateReady,
		totalCount: -1,
		width:      80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	// The bar style pads one column on each side.
	padding := b.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	prefix := ""
	if b.fetcher != "" {
		prefix = "[" + b.fetcher + "] "
	}

	switch b.state {
	case StateWaiting:
		return b.styles.Warning.Render(prefix + "Waiting for response...")
	case StateError:
		if b.message != "" {
			return b.styles.Error.Render(prefix + "Error: " + b.message)
		}
		return b.styles.Error.Render(prefix + "Error")
	case StateHelp:
		return b.styles.Normal.Render("Help")
	case StateReceived:
		return b.styles.Success.Render(prefix + b.receivedText())
	case StateReady:
	}
	if b.message != "" {
		return b.styles.Muted.Render(prefix + b.message)
	}
	return b.styles.Muted.Render(prefix + "Ready")
}

func (b *Bar) receivedText() string {
	switch {
	case b.totalCount >= 0:
		return fmt.Sprintf("%d of %d repositories", b.repoCount, b.totalCount)
	case b.repoCount > 0:
		return fmt.Sprintf("%d repositories", b.repoCount)
	default:
		return "Response received"
	}
}

func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()
	if b.state == StateReceived {
		bindings = b.keymap.ResultsHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a custom message.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetCounts records how many repositories are shown and how many the
// response reports in total. A negative total means unknown.
func (b *Bar) SetCounts(shown int, total int64) {
	b.repoCount = shown
	b.totalCount = total
}

// SetFetcher sets the fetcher label shown before the state.
func (b *Bar) SetFetcher(name string) {
	b.fetcher = name
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Clear resets the status bar to its default state.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.repoCount = 0
	b.totalCount = -1
}

// Bindings exposes the hints currently shown, for tests.
func (b *Bar) Bindings() []key.Binding {
	if b.state == StateReceived {
		return b.keymap.ResultsHelp()
	}
	return b.keymap.ShortHelp()
}
