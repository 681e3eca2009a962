// Package mcp provides an MCP (Model Context Protocol) server adapter for
// sercha-bridge. Assistants call its search tool to run one bridged request.
package mcp

import "errors"

// ErrMissingExchanger is returned when the exchange service is not provided.
var ErrMissingExchanger = errors.New("mcp: exchange service is required")
