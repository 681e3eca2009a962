package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigStore_Seeded(t *testing.T) {
	seed := map[string]any{"bridge.fetcher": "github"}
	store := NewConfigStore(seed)

	assert.Equal(t, "github", store.GetString("bridge.fetcher"))

	// Seed map is copied.
	seed["bridge.fetcher"] = "http"
	assert.Equal(t, "github", store.GetString("bridge.fetcher"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore(nil)

	assert.NoError(t, store.Set("search.endpoint", "https://example.com/?q="))

	val, ok := store.Get("search.endpoint")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/?q=", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore(map[string]any{"n": int64(3)})

	assert.Equal(t, "", store.GetString("n"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore(nil)

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
