package mcp

import (
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Exchange runs one request through a private bridge.
	Exchange driving.Exchanger

	// Settings resolves search terms to URLs and backs the settings
	// resource. Optional; defaults apply when nil.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Exchange == nil {
		return ErrMissingExchanger
	}
	return nil
}
