package shortcut

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("no such device")
	ErrNotADevice       = errors.New("not an input device")

	// ErrNoDevices is returned by Listen when no device paths are given.
	ErrNoDevices = errors.New("no input devices given")
)

// OpenError is returned by Listen when a device node cannot be opened.
// Err is one of ErrPermissionDenied, ErrNotFound or ErrNotADevice, possibly
// wrapping the underlying OS error.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open device %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Opener opens a device node for reading raw input_event records. Reads
// must return whole records, as the kernel does for evdev nodes, and must
// fail once Close has been called.
type Opener interface {
	Open(path string) (io.ReadCloser, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) (io.ReadCloser, error)

func (f OpenerFunc) Open(path string) (io.ReadCloser, error) { return f(path) }

// DeviceOpener opens evdev nodes under /dev/input.
var DeviceOpener Opener = OpenerFunc(openDevice)

// classified wraps err in the OpenError kind it belongs to.
type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string {
	if c.err == nil {
		return c.kind.Error()
	}
	return c.kind.Error() + ": " + c.err.Error()
}

func (c *classified) Unwrap() []error {
	if c.err == nil {
		return []error{c.kind}
	}
	return []error{c.kind, c.err}
}

func classify(kind, err error) error {
	return &classified{kind: kind, err: err}
}
