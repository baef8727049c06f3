//go:build integration

package test_test

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("EVSHORTCUT_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "EVSHORTCUT_TEST_BIN not set; build the binary and point the variable at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type result struct {
	out     string
	code    int
	logDir  string
	cfgPath string
}

// runEvshortcut runs the binary with its own config file and log directory.
func runEvshortcut(t *testing.T, args ...string) result {
	t.Helper()
	dir := t.TempDir()
	r := result{
		logDir:  filepath.Join(dir, "logs"),
		cfgPath: filepath.Join(dir, "config", "config.toml"),
	}
	cmdArgs := append([]string{"-logpath", r.logDir, "-config", r.cfgPath, "-tui=false"}, args...)

	cmd := exec.Command(testBinary, cmdArgs...)
	cmd.Env = os.Environ()

	out, err := cmd.CombinedOutput()
	r.out = string(out)
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		r.code = exitErr.ExitCode()
	default:
		t.Fatalf("evshortcut did not run: %v", err)
	}
	return r
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

func TestVersion(t *testing.T) {
	r := runEvshortcut(t, "-version")
	if r.code != 0 || !strings.HasPrefix(r.out, "evshortcut ") {
		t.Errorf("exit %d, output %q", r.code, r.out)
	}
}

func TestDefaultConfigWritten(t *testing.T) {
	r := runEvshortcut(t, "-device", "/dev/input/evshortcut-missing")
	data, err := os.ReadFile(r.cfgPath)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), "<Meta>-KeyN") {
		t.Errorf("default config missing example shortcut:\n%s", data)
	}
}

func TestMissingDevice(t *testing.T) {
	r := runEvshortcut(t, "-device", "/dev/input/evshortcut-missing")
	if r.code != 1 {
		t.Fatalf("exit %d, want 1; output %q", r.code, r.out)
	}
	if !strings.Contains(r.out, "no such device") {
		t.Errorf("output %q does not explain the failure", r.out)
	}
	diag := readLog(t, r.logDir, "diagnostics_log.txt")
	if !strings.Contains(diag, "listen_open_failed") {
		t.Errorf("diagnostics missing listen_open_failed:\n%s", diag)
	}
}

func TestRegularFileIsNotADevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event0")
	if err := os.WriteFile(path, make([]byte, 48), 0644); err != nil {
		t.Fatal(err)
	}
	r := runEvshortcut(t, "-device", path)
	if r.code != 1 || !strings.Contains(r.out, "not an input device") {
		t.Errorf("exit %d, output %q", r.code, r.out)
	}
}

func TestBadShortcut(t *testing.T) {
	r := runEvshortcut(t, "-shortcut", "<Hyper>-KeyA")
	if r.code != 1 {
		t.Errorf("exit %d, want 1; output %q", r.code, r.out)
	}
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte("[match]\npolicy = \"fuzzy\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cmd := exec.Command(testBinary, "-config", cfg, "-logpath", filepath.Join(dir, "logs"), "-tui=false")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("bad config accepted, output %q", out)
	}
	if !strings.Contains(string(out), "fuzzy") {
		t.Errorf("output %q does not name the bad policy", out)
	}
}
