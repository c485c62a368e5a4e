// Package fsnotify watches a rate-card drop directory using
// github.com/fsnotify/fsnotify. New or rewritten .csv files trigger the
// callback after a settle delay — exporters and network copies write files in
// several bursts, and ingesting a half-written CSV just produces a pile of
// failed rows.
package fsnotify

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet before it is reported.
const settleDelay = 500 * time.Millisecond

// Watcher reports CSV files dropped into a single directory.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new drop-directory watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir (non-recursive). onCSV is called with the
// absolute path of each settled .csv file.
func (w *Watcher) Watch(dir string, onCSV func(path string)) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := w.fw.Add(absDir); err != nil {
		return err
	}

	// Pending settle timers, one per path.
	timers := make(map[string]*time.Timer)
	var tmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name
				if !isCSV(path) {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}

				// Restart the settle timer on every burst of writes.
				tmu.Lock()
				if t, exists := timers[path]; exists {
					t.Stop()
				}
				timers[path] = time.AfterFunc(settleDelay, func() {
					tmu.Lock()
					delete(timers, path)
					tmu.Unlock()
					onCSV(path)
				})
				tmu.Unlock()

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// isCSV reports whether path names a non-hidden .csv file.
func isCSV(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".csv")
}
