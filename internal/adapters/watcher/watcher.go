package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/lithos/internal/core/domain"
	"go.trai.ch/lithos/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow coalesces editor save bursts into one re-run.
const DefaultDebounceWindow = 250 * time.Millisecond

var _ ports.Watcher = (*Watcher)(nil)

// Watcher watches component files and reports the query identities that
// must re-run when files change. Cache entries are never touched; the
// result hash comparison decides whether a re-run actually writes.
type Watcher struct {
	registry *Registry
	onDirty  func(queryIDs []string)
	logger   ports.Logger
	window   time.Duration

	mu   sync.Mutex
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// New creates a Watcher that invokes onDirty with the queries owned by
// changed components.
func New(registry *Registry, logger ports.Logger, onDirty func(queryIDs []string)) *Watcher {
	return &Watcher{
		registry: registry,
		onDirty:  onDirty,
		logger:   logger,
		window:   DefaultDebounceWindow,
	}
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	if err := addRecursive(fsw, root); err != nil {
		_ = fsw.Close()
		return err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	debouncer := NewDebouncer(w.window, func(paths []string) {
		ids := w.registry.QueriesFor(paths)
		if len(ids) > 0 {
			w.onDirty(ids)
		}
	})

	go w.loop(ctx, fsw, debouncer, done)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.done
	w.fsw = nil
	return err
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, debouncer *Debouncer, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be watched too.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = fsw.Add(event.Name)
					continue
				}
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) ||
				event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Remove) {
				debouncer.Add(event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.logger.Warn("watch error: " + err.Error())
			}
		}
	}
}

// addRecursive registers every directory under root, skipping the build's
// own output directories to avoid feedback loops.
func addRecursive(fsw *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (name == domain.PublicDirName || name == domain.CacheDirName || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	return nil
}
