// Package tui provides the interactive terminal front end of sercha-bridge.
// It is a driving adapter: it publishes query URLs on the application's
// request port and renders whatever arrives on the response port.
package tui

import (
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
)

// RequestSender publishes query strings on the request port.
type RequestSender interface {
	Send(query string)
}

// ResponseSource delivers values published on the response port.
type ResponseSource interface {
	Subscribe(fn func(value any)) (unsubscribe func())
}

// Ports aggregates what the TUI needs from the application runtime.
type Ports struct {
	// Requests is the outbound searchRequests port.
	Requests RequestSender

	// Responses is the inbound searchResponses port.
	Responses ResponseSource

	// Settings provides the search endpoint and fetcher label. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Requests == nil {
		return ErrMissingRequestPort
	}
	if p.Responses == nil {
		return ErrMissingResponsePort
	}
	return nil
}
