package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("bridge.fetcher", "github"))

	val, ok := store.Get("bridge.fetcher")
	assert.True(t, ok)
	assert.Equal(t, "github", val)
	assert.Equal(t, "github", store.GetString("bridge.fetcher"))
}

func TestConfigStore_GetString_Missing(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("nonexistent"))

	require.NoError(t, store.Set("count", 3))
	assert.Equal(t, "", store.GetString("count"))
}

func TestConfigStore_WritesTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("bridge.fetcher", "http"))
	require.NoError(t, store.Set("search.endpoint", "https://example.com/?q="))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[bridge]")
	assert.Contains(t, string(data), "[search]")
	assert.NotContains(t, string(data), "'bridge.fetcher'")
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("bridge.fetcher", "github"))
	require.NoError(t, store1.Set("github.base_url", "https://ghe.example.com/api/v3/"))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "github", store2.GetString("bridge.fetcher"))
	assert.Equal(t, "https://ghe.example.com/api/v3/", store2.GetString("github.base_url"))
}

func TestConfigStore_LoadsHandWrittenTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("[bridge]\nfetcher = \"github\"\nuser_agent = \"me\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "github", store.GetString("bridge.fetcher"))
	assert.Equal(t, "me", store.GetString("bridge.user_agent"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("any_key")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("bridge.user_agent", "x"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "k.key" + string(rune('0'+id))
			_ = store.Set(key, "v")
			_ = store.GetString(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("a.b", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("a.c", "value"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"bridge": map[string]any{"fetcher": "http"},
		"top":    "x",
	}

	assert.Equal(t, map[string]any{
		"bridge.fetcher": "http",
		"top":            "x",
	}, flattenMap(nested, ""))
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"bridge.fetcher":    "http",
		"bridge.user_agent": "ua",
		"top":               "x",
	}

	assert.Equal(t, map[string]any{
		"bridge": map[string]any{"fetcher": "http", "user_agent": "ua"},
		"top":    "x",
	}, nestMap(flat))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	flat := map[string]any{
		"a":   "value",
		"a.b": "nested",
	}

	assert.Equal(t, map[string]any{"a": "value"}, nestMap(flat))
}
