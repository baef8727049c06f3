//go:build !windows

package log

import (
	"os"
	"path/filepath"
	"runtime"
)

func getDefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "evshortcut"), nil
	}

	// Linux: XDG_STATE_HOME, falling back to ~/.local/state
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(state, "evshortcut", "logs"), nil
}
