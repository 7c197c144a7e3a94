// ABOUTME: Polling watcher that reloads settings when the config file changes
// ABOUTME: Compares mtimes at an interval; invalid files are logged and ignored

package config

import (
	"os"
	"sync"
	"time"

	"github.com/apuya/react-basics-ui-sub003/internal/log"
)

// DefaultWatchInterval is how often the config file is polled.
const DefaultWatchInterval = 2 * time.Second

// Watcher reloads settings from a file whenever its mtime changes.
type Watcher struct {
	path     string
	onChange func(*Settings)
	interval time.Duration

	mu       sync.Mutex
	mtime    time.Time
	exists   bool
	running  bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher that calls onChange with freshly loaded
// settings after path is modified, created, or removed. A removed file
// reloads the defaults.
func NewWatcher(path string, onChange func(*Settings)) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		interval: DefaultWatchInterval,
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the polling interval. Call before Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Start begins polling in a goroutine. Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.snapshotLocked()
	interval := w.interval
	w.mu.Unlock()

	go w.loop(interval)
}

// Stop halts polling. Safe to call more than once and concurrently.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.stopCh)
	})
}

// ForceCheck checks the file now and reloads synchronously if it changed.
// It reports whether onChange was called.
func (w *Watcher) ForceCheck() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if changed {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if !changed {
		return false
	}
	return w.reload()
}

func (w *Watcher) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.ForceCheck()
		}
	}
}

func (w *Watcher) reload() bool {
	s, err := load(w.path, false)
	if err != nil {
		log.Warn("config reload failed: %v", err)
		return false
	}
	log.Info("config reloaded from %s", w.path)
	w.onChange(s)
	return true
}

// changedLocked compares the file's current state with the snapshot.
func (w *Watcher) changedLocked() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return w.exists
	}
	return !w.exists || !info.ModTime().Equal(w.mtime)
}

// snapshotLocked records the file's current state.
func (w *Watcher) snapshotLocked() {
	info, err := os.Stat(w.path)
	if err != nil {
		w.exists = false
		w.mtime = time.Time{}
		return
	}
	w.exists = true
	w.mtime = info.ModTime()
}
