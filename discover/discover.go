// Package discover finds keyboard device nodes and watches for them to come
// and go.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	devInputDir   = "/dev/input"
	sysClassInput = "/sys/class/input"
)

// Keyboards returns the device nodes matching patterns. Symlinks such as
// /dev/input/by-id/*-kbd are resolved so that a device matched twice is only
// listed once. When nothing matches, every event node whose key capability
// bitmap looks like a keyboard is returned instead.
func Keyboards(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad device pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			resolved, err := filepath.EvalSymlinks(m)
			if err != nil {
				continue
			}
			if seen[resolved] {
				continue
			}
			seen[resolved] = true
			paths = append(paths, m)
		}
	}
	if len(paths) > 0 {
		return paths, nil
	}
	return scanKeyboards()
}

// scanKeyboards lists /dev/input/event* nodes that sysfs reports as
// keyboards.
func scanKeyboards() ([]string, error) {
	entries, err := os.ReadDir(devInputDir)
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, filepath.Join(devInputDir, e.Name()))
		}
	}
	slices.SortFunc(keyboards, compareEventNodes)
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join(sysClassInput, eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	// Real keyboards have long key capability bitmaps
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

// compareEventNodes orders event2 before event10.
func compareEventNodes(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// Diagnose checks that keyboards can be found and opened and returns a
// status message.
func Diagnose(patterns []string) (string, error) {
	keyboards, err := Keyboards(patterns)
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened []string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = append(opened, path)
		}
	}
	if len(opened) == 0 {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}
	if len(opened) < len(keyboards) {
		return fmt.Sprintf("%d keyboard(s) found, %d can be opened: %s", len(keyboards), len(opened), strings.Join(opened, ", ")), nil
	}
	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), strings.Join(opened, ", ")), nil
}
