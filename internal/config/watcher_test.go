// ABOUTME: Tests for the polling config watcher
// ABOUTME: Validates reload on change, defaults on removal, invalid files, and stop behavior

package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// touch rewrites path and pushes its mtime forward so the change is seen
// even on filesystems with coarse timestamps.
func touch(t *testing.T, path, body string, step int) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	ts := time.Now().Add(time.Duration(step) * time.Second)
	if err := os.Chtimes(path, ts, ts); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_ForceCheckReloads(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	touch(t, path, "menu:\n  side: bottom\n", 0)

	var got *Settings
	w := NewWatcher(path, func(s *Settings) { got = s })
	w.snapshotLocked()

	if w.ForceCheck() {
		t.Fatal("ForceCheck() reported a change for an untouched file")
	}

	touch(t, path, "menu:\n  side: top\n", 5)
	if !w.ForceCheck() {
		t.Fatal("ForceCheck() missed the modification")
	}
	if got == nil || got.Menu.Side != "top" {
		t.Errorf("reloaded settings = %+v, want menu side top", got)
	}
}

func TestWatcher_InvalidFileIgnored(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	touch(t, path, "menu:\n  side: bottom\n", 0)

	called := false
	w := NewWatcher(path, func(*Settings) { called = true })
	w.snapshotLocked()

	touch(t, path, "menu:\n  side: sideways\n", 5)
	if w.ForceCheck() || called {
		t.Error("invalid config should not be delivered")
	}
}

func TestWatcher_RemovalLoadsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	touch(t, path, "tooltip:\n  side: left\n", 0)

	var got *Settings
	w := NewWatcher(path, func(s *Settings) { got = s })
	w.snapshotLocked()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if !w.ForceCheck() {
		t.Fatal("ForceCheck() missed the removal")
	}
	if got.Tooltip.Side != Default().Tooltip.Side {
		t.Errorf("Tooltip.Side = %q, want default", got.Tooltip.Side)
	}
}

func TestWatcher_PollsInBackground(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	touch(t, path, "menu:\n  gap: 0\n", 0)

	var calls atomic.Int32
	w := NewWatcher(path, func(*Settings) { calls.Add(1) })
	w.SetInterval(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	touch(t, path, "menu:\n  gap: 2\n", 5)

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if calls.Load() == 0 {
		t.Error("background poll did not reload")
	}
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	t.Parallel()

	w := NewWatcher(filepath.Join(t.TempDir(), "missing.yaml"), func(*Settings) {})
	w.Start()
	w.Start()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Stop()
		}()
	}
	wg.Wait()
}
