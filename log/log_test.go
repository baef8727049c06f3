package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("EVSHORTCUT_LOG_PATH", "/tmp/evshortcut-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/evshortcut-env-log" {
		t.Errorf("got %q, want /tmp/evshortcut-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("EVSHORTCUT_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default directory")
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"diagnostics_log.txt", "events_log.txt"} {
		path := filepath.Join(tmp, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}
}

func TestShortcutEvent(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	ShortcutEvent("<Meta>-KeyN", "pressed")

	data, err := os.ReadFile(filepath.Join(tmp, "events_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	if !strings.Contains(line, "<Meta>-KeyN\tpressed") {
		t.Errorf("events_log.txt missing event, got: %q", line)
	}
}

func TestLoggerWritesDiagnostics(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}

	lg := Logger()
	lg.Warn().Str("device", "/dev/input/event3").Msg("device_read_failed")
	SessionStart([]string{"/dev/input/event3"}, 2, "at-least")

	data, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"device_read_failed", "/dev/input/event3", "session_start", "at-least"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("diagnostics_log.txt missing %q, got: %q", want, data)
		}
	}
}

func TestLoggerBeforeInit(t *testing.T) {
	setupLogDir(t)
	lg := Logger()
	lg.Info().Msg("dropped") // must not panic
	ShortcutEvent("KeyA", "pressed")
}

func TestCloseIdempotent(t *testing.T) {
	setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	Close()
	Close() // should not panic
}
