//go:build linux

package shortcut

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// inputMajor is the character device major number of the input subsystem.
const inputMajor = 13

func openDevice(path string) (io.ReadCloser, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, openErr(path, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFCHR || unix.Major(uint64(st.Rdev)) != inputMajor {
		return nil, &OpenError{Path: path, Err: ErrNotADevice}
	}

	// Char devices go through the runtime poller, so Close unblocks a
	// pending Read.
	f, err := os.Open(path)
	if err != nil {
		return nil, openErr(path, err)
	}
	return f, nil
}

func openErr(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &OpenError{Path: path, Err: classify(ErrNotFound, err)}
	case errors.Is(err, fs.ErrPermission):
		return &OpenError{Path: path, Err: classify(ErrPermissionDenied, err)}
	}
	return &OpenError{Path: path, Err: classify(ErrNotADevice, err)}
}
