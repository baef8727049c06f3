package shortcut

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// encodeRecord is the inverse of decodeRecord.
func encodeRecord(t time.Time, evType, code uint16, value int32) []byte {
	b := make([]byte, RecordSize)
	sec := t.Unix()
	usec := int64(t.Nanosecond()) / int64(time.Microsecond)
	if longSize == 8 {
		binary.NativeEndian.PutUint64(b[0:], uint64(sec))
		binary.NativeEndian.PutUint64(b[8:], uint64(usec))
	} else {
		binary.NativeEndian.PutUint32(b[0:], uint32(sec))
		binary.NativeEndian.PutUint32(b[4:], uint32(usec))
	}
	binary.NativeEndian.PutUint16(b[typeOffset:], evType)
	binary.NativeEndian.PutUint16(b[codeOffset:], code)
	binary.NativeEndian.PutUint32(b[valueOffset:], uint32(value))
	return b
}

func keyRecord(k Key, value int32) []byte {
	return encodeRecord(time.Now(), evKey, uint16(k), value)
}

func synRecord() []byte {
	return encodeRecord(time.Now(), 0, 0, 0)
}

// fakeDevice is a device node backed by a pipe. Every write is delivered by
// exactly one Read, like the kernel does for evdev nodes.
type fakeDevice struct {
	r *io.PipeReader
	w *io.PipeWriter

	closes atomic.Int32
}

func newFakeDevice() *fakeDevice {
	r, w := io.Pipe()
	return &fakeDevice{r: r, w: w}
}

func (d *fakeDevice) Read(p []byte) (int, error) { return d.r.Read(p) }

func (d *fakeDevice) Close() error {
	d.closes.Add(1)
	return d.r.Close()
}

func (d *fakeDevice) write(t *testing.T, chunks ...[]byte) {
	t.Helper()
	var b []byte
	for _, c := range chunks {
		b = append(b, c...)
	}
	if _, err := d.w.Write(b); err != nil {
		t.Fatalf("writing to fake device: %v", err)
	}
}

func (d *fakeDevice) press(t *testing.T, k Key) {
	t.Helper()
	d.write(t, keyRecord(k, valueDown), synRecord())
}

func (d *fakeDevice) release(t *testing.T, k Key) {
	t.Helper()
	d.write(t, keyRecord(k, valueUp), synRecord())
}

func (d *fakeDevice) repeat(t *testing.T, k Key) {
	t.Helper()
	d.write(t, keyRecord(k, valueHeld), synRecord())
}

// fail makes pending and future reads return err.
func (d *fakeDevice) fail(err error) {
	d.w.CloseWithError(err)
}

// unplug makes reads return io.EOF.
func (d *fakeDevice) unplug() {
	d.w.Close()
}

// fakeOpener hands out fake devices by path. Paths listed in errs fail.
type fakeOpener struct {
	mu      sync.Mutex
	devices map[string]*fakeDevice
	errs    map[string]error
}

func newFakeOpener(paths ...string) *fakeOpener {
	o := &fakeOpener{devices: make(map[string]*fakeDevice), errs: make(map[string]error)}
	for _, p := range paths {
		o.devices[p] = newFakeDevice()
	}
	return o
}

func (o *fakeOpener) Open(path string) (io.ReadCloser, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err, ok := o.errs[path]; ok {
		return nil, &OpenError{Path: path, Err: err}
	}
	d, ok := o.devices[path]
	if !ok {
		return nil, &OpenError{Path: path, Err: ErrNotFound}
	}
	return d, nil
}

func (o *fakeOpener) device(path string) *fakeDevice {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.devices[path]
}

type step struct {
	ev     keyEvent
	events []Event
}

// harness runs a Listener over fake devices and lets a test wait for every
// key event to be evaluated.
type harness struct {
	t      *testing.T
	l      *Listener
	opener *fakeOpener
	st     *Stream
	steps  chan step
}

func newHarness(t *testing.T, paths []string, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		t:      t,
		opener: newFakeOpener(paths...),
		steps:  make(chan step, 64),
	}
	hook := withStepHook(func(ev keyEvent, events []Event) {
		h.steps <- step{ev: ev, events: events}
	})
	h.l = NewListener(append([]Option{WithOpener(h.opener), hook}, opts...)...)
	return h
}

func (h *harness) listen(paths ...string) {
	h.t.Helper()
	st, err := h.l.Listen(context.Background(), paths)
	if err != nil {
		h.t.Fatalf("Listen: %v", err)
	}
	h.st = st
	h.t.Cleanup(func() { st.Close() })
}

func (h *harness) dev(path string) *fakeDevice {
	return h.opener.device(path)
}

// next waits for the next evaluated key event and receives the shortcut
// events it produced.
func (h *harness) next() []Event {
	h.t.Helper()
	var s step
	select {
	case s = <-h.steps:
	case <-time.After(time.Second):
		h.t.Fatal("timed out waiting for key event")
	}
	got := make([]Event, 0, len(s.events))
	for range s.events {
		select {
		case ev := <-h.st.Events():
			got = append(got, ev)
		case <-time.After(time.Second):
			h.t.Fatal("timed out waiting for shortcut event")
		}
	}
	return got
}

// expectSilent asserts that no key event reaches the evaluation loop.
func (h *harness) expectSilent() {
	h.t.Helper()
	select {
	case s := <-h.steps:
		h.t.Fatalf("unexpected key event %v %v", s.ev.Key, s.ev.Transition)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitClosed(t *testing.T, events <-chan Event) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for stream to end")
		}
	}
}

func assertEvents(t *testing.T, got []Event, want ...Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

var errUnplugged = errors.New("device unplugged")
