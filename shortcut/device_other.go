//go:build !linux

package shortcut

import (
	"errors"
	"io"
)

func openDevice(path string) (io.ReadCloser, error) {
	return nil, &OpenError{Path: path, Err: classify(ErrNotADevice, errors.New("evdev is only available on linux"))}
}
