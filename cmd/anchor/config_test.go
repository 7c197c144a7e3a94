// ABOUTME: Tests for config init and config show
// ABOUTME: Files live in t.TempDir; init refuses to clobber without --force

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, testCLI(80, 24), "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if out != "wrote "+path+"\n" {
		t.Errorf("config init printed %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	for _, want := range []string{"tooltip:", "side: top", "frame_interval: 16ms"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("written config lacks %q:\n%s", want, data)
		}
	}

	if _, err := execute(t, testCLI(80, 24), "config", "init", "--path", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := execute(t, testCLI(80, 24), "config", "init", "--path", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigInit_UsesGlobalConfigFlag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "anchor.yaml")
	if _, err := execute(t, testCLI(80, 24), "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("--config path not written: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "menu:\n  side: top\n  align: end\n  padding: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, testCLI(80, 24), "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	menu := out[strings.Index(out, "menu:"):]
	for _, want := range []string{"side: top", "align: end", "padding: 2"} {
		if !strings.Contains(menu, want) {
			t.Errorf("menu section lacks %q:\n%s", want, menu)
		}
	}
	if !strings.Contains(out, "datepicker:") {
		t.Errorf("defaults missing from output:\n%s", out)
	}
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := execute(t, testCLI(80, 24), "--config", missing, "config", "show"); err == nil {
		t.Error("explicit missing config should fail")
	}
}
