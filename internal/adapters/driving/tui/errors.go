package tui

import "errors"

// ErrMissingRequestPort is returned when no request port is provided.
var ErrMissingRequestPort = errors.New("tui: request port is required")

// ErrMissingResponsePort is returned when no response port is provided.
var ErrMissingResponsePort = errors.New("tui: response port is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
