package synonyms

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_RefreshesOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix: socolor\n"), 0o644))

	cache := NewCache(&FileSource{Path: path}, nil)
	cache.Refresh()
	require.Equal(t, []string{"socolor"}, cache.Current()["matrix"])

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(cache, path, nil)
	w.debounce = 10 * time.Millisecond
	go func() { _ = w.Watch(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("matrix: wella\n"), 0o644))

	assert.Eventually(t, func() bool {
		return len(cache.Current()["matrix"]) > 0 && cache.Current()["matrix"][0] == "wella"
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matrix: socolor\n"), 0o644))

	cache := NewCache(&FileSource{Path: path}, nil)
	cache.Refresh()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(cache, path, nil)
	w.debounce = 10 * time.Millisecond
	go func() { _ = w.Watch(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: y\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	// Table untouched; the sibling write never scheduled a refresh.
	assert.Equal(t, []string{"socolor"}, cache.Current()["matrix"])
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: b\n"), 0o644))

	cache := NewCache(&FileSource{Path: path}, nil)
	w := NewWatcher(cache, path, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
