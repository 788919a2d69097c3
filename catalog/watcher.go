package catalog

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/tessera/core"
)

// Watcher reloads a catalog whenever its file changes on disk and
// notifies a callback with the refreshed catalog. The watcher owns the
// single background goroutine; generation stays synchronous in the
// callback.
type Watcher struct {
	catalog  *Catalog
	path     string
	onReload func(*Catalog)

	mutex     sync.Mutex
	fsnotify  *fsnotify.Watcher
	done      chan struct{}
	isStarted bool
	isClosed  bool
}

// NewWatcher creates a watcher for the given catalog file. onReload may
// be nil.
func NewWatcher(c *Catalog, path string, onReload func(*Catalog)) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		catalog:  c,
		path:     path,
		onReload: onReload,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Editors often replace files on save, so the
// containing directory is watched and events filtered by name.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	if err := w.fsnotify.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.isStarted = true
	go w.start()
	return nil
}

func (w *Watcher) start() {
	for {
		select {
		case e := <-w.fsnotify.Events:
			if filepath.Clean(e.Name) != filepath.Clean(w.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := w.catalog.Reload(w.path); err != nil {
				core.LogError("catalog reload failed: %s", err.Error())
				continue
			}
			core.LogDebug("catalog %s reloaded", w.path)
			if w.onReload != nil {
				w.onReload(w.catalog)
			}

		case e := <-w.fsnotify.Errors:
			core.LogError(e.Error())

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return
	}
	w.isClosed = true
	close(w.done)
	// the goroutine owns the fsnotify handle once started; without it
	// nobody else would release the handle
	if !w.isStarted {
		w.fsnotify.Close()
	}
}
