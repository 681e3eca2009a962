package file

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_Watch_ReloadsOnWrite(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("search.endpoint", "https://a.example.com/?q="))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	content := []byte("[search]\nendpoint = \"https://b.example.com/?q=\"\n")
	require.NoError(t, os.WriteFile(store.Path(), content, 0600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
	assert.Eventually(t, func() bool {
		return store.GetString("search.endpoint") == "https://b.example.com/?q="
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestConfigStore_Watch_StopsOnCancelledContext(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, store.Watch(ctx, nil))
}

func TestConfigStore_Watch_CoalescesTruncateThenWrite(t *testing.T) {
	original := WatchDebounce
	WatchDebounce = 200 * time.Millisecond
	t.Cleanup(func() { WatchDebounce = original })

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("bridge.fetcher", "github"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 10)
	go func() {
		_ = store.Watch(ctx, func() { seen <- store.GetString("bridge.fetcher") })
	}()
	time.Sleep(100 * time.Millisecond)

	// A non-atomic rewrite: the file is empty between the two writes.
	require.NoError(t, os.WriteFile(store.Path(), nil, 0600))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[bridge]\nfetcher = \"github\"\nuser_agent = \"ua\"\n"), 0600))

	select {
	case fetcher := <-seen:
		assert.Equal(t, "github", fetcher)
	case <-time.After(5 * time.Second):
		t.Fatal("expected change notification")
	}
	assert.Equal(t, "ua", store.GetString("bridge.user_agent"))

	select {
	case fetcher := <-seen:
		t.Fatalf("unexpected second reload (fetcher=%q)", fetcher)
	case <-time.After(3 * WatchDebounce):
	}
}
