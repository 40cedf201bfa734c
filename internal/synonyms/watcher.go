package synonyms

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the bursts of write events most editors
// emit while saving a file.
const defaultDebounce = 200 * time.Millisecond

// Watcher refreshes a Cache when the synonyms file changes on disk. It
// watches the parent directory so atomic save-and-rename and delete are
// observed too; the mtime check inside Refresh makes spurious triggers
// harmless.
type Watcher struct {
	cache    *Cache
	path     string
	debounce time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher that refreshes cache when the file at
// path changes.
func NewWatcher(cache *Cache, path string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		cache:    cache,
		path:     filepath.Clean(path),
		debounce: defaultDebounce,
		logger:   logger,
	}
}

// Watch blocks until the context is cancelled, refreshing the cache
// after each burst of relevant file events. Watcher errors are logged
// and ignored; the mtime fallback in Cache keeps working without it.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.scheduleRefresh()
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("synonyms watcher error", "error", err)
		}
	}
}

// scheduleRefresh arms (or re-arms) the debounce timer.
func (w *Watcher) scheduleRefresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.cache.Refresh()
	})
}
