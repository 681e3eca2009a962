// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
)

// SearchRequested reports that a query URL was sent on the request port.
type SearchRequested struct {
	// Term is what the user typed.
	Term string
	// URL is the string actually sent.
	URL string
}

// ResponseReceived carries a value published on the response port.
type ResponseReceived struct {
	Value any
}

// SettingsReloaded is sent when the config file changed on disk.
type SettingsReloaded struct {
	Settings *domain.AppSettings
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query input and response view.
	ViewSearch ViewType = iota
	// ViewHelp lists keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
