//go:build linux

package discover

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
)

// Device describes an input device the current user can open.
type Device struct {
	Path     string
	Name     string
	Keyboard bool
}

// Devices lists the input devices that can be opened, with their names and
// whether they can type letters.
func Devices() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}
	out := make([]Device, 0, len(paths))
	for _, p := range paths {
		out = append(out, Device{Path: p.Path, Name: p.Name, Keyboard: canType(p.Path)})
	}
	return out, nil
}

// canType reports whether the device has both KEY_A and KEY_ENTER.
func canType(path string) bool {
	dev, err := evdev.Open(path)
	if err != nil {
		return false
	}
	defer dev.Close()

	var hasA, hasEnter bool
	for _, c := range dev.CapableEvents(evdev.EV_KEY) {
		switch c {
		case evdev.KEY_A:
			hasA = true
		case evdev.KEY_ENTER:
			hasEnter = true
		}
	}
	return hasA && hasEnter
}
