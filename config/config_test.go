package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"evshortcut/shortcut"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if len(cfg.Devices.Patterns) == 0 || !cfg.Devices.Watch {
		t.Errorf("unexpected defaults: %+v", cfg.Devices)
	}

	// The written file loads back to the same values.
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Shortcuts) != 1 || again.Shortcuts[0].Combo != shortcut.New(shortcut.KeyN, shortcut.Meta) {
		t.Errorf("got shortcuts %+v", again.Shortcuts)
	}
	if again.Gesture.LongPress.Duration != 350*time.Millisecond {
		t.Errorf("got long press %v", again.Gesture.LongPress)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[devices]
patterns = ["/dev/input/event3", "/dev/input/by-id/*-kbd"]
watch = false

[match]
policy = "exact"

[gesture]
long_press = "500ms"

[[shortcut]]
name = "launcher"
combo = "<Meta>-KeySpace"

[[shortcut]]
name = "lock"
combo = "<Ctrl><Alt>-KeyL"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Devices.Watch || len(cfg.Devices.Patterns) != 2 {
		t.Errorf("devices = %+v", cfg.Devices)
	}
	if cfg.MatchPolicy() != shortcut.MatchExact {
		t.Errorf("policy = %v", cfg.MatchPolicy())
	}
	if cfg.Gesture.LongPress.Duration != 500*time.Millisecond {
		t.Errorf("long press = %v", cfg.Gesture.LongPress)
	}
	want := []shortcut.Shortcut{
		shortcut.New(shortcut.KeySpace, shortcut.Meta),
		shortcut.New(shortcut.KeyL, shortcut.Ctrl, shortcut.Alt),
	}
	if len(cfg.Shortcuts) != len(want) {
		t.Fatalf("got %d shortcuts", len(cfg.Shortcuts))
	}
	for i, w := range want {
		if cfg.Shortcuts[i].Combo != w {
			t.Errorf("shortcut %d = %v, want %v", i, cfg.Shortcuts[i].Combo, w)
		}
	}
}

func TestLoadRejectsBadCombo(t *testing.T) {
	path := writeConfig(t, `
[[shortcut]]
combo = "<Hyper>-KeyA"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[devices]
patern = ["/dev/input/event0"]
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown config keys") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Match.Policy = "fuzzy"
	if err := cfg.Validate(); err == nil {
		t.Error("bad policy accepted")
	}

	cfg = Default()
	cfg.Shortcuts = append(cfg.Shortcuts, ShortcutConfig{Name: "dup", Combo: cfg.Shortcuts[0].Combo})
	if err := cfg.Validate(); err == nil {
		t.Error("duplicate shortcut accepted")
	}

	cfg = Default()
	cfg.Shortcuts = []ShortcutConfig{{Name: "empty"}}
	if err := cfg.Validate(); err == nil {
		t.Error("empty combo accepted")
	}
}

func TestPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/xdg/evshortcut/config.toml" {
		t.Errorf("got %q", got)
	}
}
