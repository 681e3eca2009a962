package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_HavePrefix(t *testing.T) {
	for _, err := range []error{ErrMissingRequestPort, ErrMissingResponsePort, ErrInvalidPorts} {
		assert.Contains(t, err.Error(), "tui:")
	}
}
