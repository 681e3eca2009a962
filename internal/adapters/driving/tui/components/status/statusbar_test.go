package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bridge/internal/adapters/driving/tui/keymap"
)

func TestNewBar(t *testing.T) {
	b := NewBar(nil, nil)

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
	assert.Equal(t, 80, b.Width())
	assert.Contains(t, b.View(), "Ready")
}

func TestBar_Waiting(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetFetcher("http")

	b.SetState(StateWaiting)

	out := b.View()
	assert.Contains(t, out, "[http]")
	assert.Contains(t, out, "Waiting for response")
}

func TestBar_Received(t *testing.T) {
	tests := []struct {
		name  string
		shown int
		total int64
		want  string
	}{
		{name: "with total", shown: 30, total: 1234, want: "30 of 1234 repositories"},
		{name: "no total", shown: 2, total: -1, want: "2 repositories"},
		{name: "not a search response", shown: 0, total: -1, want: "Response received"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBar(nil, nil)
			b.SetWidth(200)
			b.SetState(StateReceived)
			b.SetCounts(tt.shown, tt.total)

			assert.Contains(t, b.View(), tt.want)
		})
	}
}

func TestBar_Error(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(200)

	b.SetState(StateError)
	assert.Contains(t, b.View(), "Error")

	b.SetMessage("config reload failed")
	assert.Contains(t, b.View(), "Error: config reload failed")
	assert.Equal(t, "config reload failed", b.Message())
}

func TestBar_HintsFollowState(t *testing.T) {
	km := keymap.DefaultKeyMap()
	b := NewBar(nil, km)

	assert.Equal(t, km.ShortHelp(), b.Bindings())

	b.SetState(StateReceived)
	assert.Equal(t, km.ResultsHelp(), b.Bindings())
}

func TestBar_Clear(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetState(StateError)
	b.SetMessage("x")
	b.SetCounts(3, 10)

	b.Clear()

	assert.Equal(t, StateReady, b.State())
	assert.Empty(t, b.Message())
	b.SetState(StateReceived)
	assert.Contains(t, b.View(), "Response received")
}
