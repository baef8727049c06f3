package shortcut

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// recordsPerRead bounds how many records one Read may return.
const recordsPerRead = 64

// session owns one open device. It is started once and ends on the first
// read error, on cancellation, or when close is called.
type session struct {
	path string
	dev  io.ReadCloser
	log  zerolog.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

func newSession(path string, dev io.ReadCloser, log zerolog.Logger) *session {
	return &session{
		path:   path,
		dev:    dev,
		log:    log.With().Str("device", path).Logger(),
		closed: make(chan struct{}),
	}
}

// close releases the device handle. Only the first call has an effect.
func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		if err := s.dev.Close(); err != nil {
			s.log.Debug().Err(err).Msg("device_close")
		}
	})
}

func (s *session) closing() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// run reads the device until it fails, forwarding key down and up events
// to out. The handle is released before run returns.
func (s *session) run(ctx context.Context, out chan<- keyEvent) {
	defer s.close()

	buf := make([]byte, RecordSize*recordsPerRead)
	for {
		n, err := s.dev.Read(buf)
		if n > 0 {
			if !s.forward(ctx, buf[:n], out) {
				return
			}
		}
		if err != nil {
			switch {
			case ctx.Err() != nil || s.closing():
			case errors.Is(err, io.EOF):
				s.log.Info().Msg("device_eof")
			default:
				s.log.Warn().Err(err).Msg("device_read_failed")
			}
			return
		}
	}
}

// forward decodes one chunk and sends its events in order. It returns false
// once the listener is shutting down.
func (s *session) forward(ctx context.Context, chunk []byte, out chan<- keyEvent) bool {
	for i := 0; i < len(chunk); i += RecordSize {
		end := min(i+RecordSize, len(chunk))
		ev, ok, err := decodeRecord(chunk[i:end], s.path)
		if err != nil {
			s.log.Debug().Err(err).Msg("record_skipped")
			continue
		}
		if !ok || ev.Transition == transitionHeld {
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return false
		}
	}
	return true
}
