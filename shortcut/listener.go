package shortcut

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Listener holds a set of registered shortcuts and turns device input into
// shortcut events. Add and Remove may be called at any time, including
// while streams returned by Listen are running.
type Listener struct {
	reg    registry
	opener Opener
	policy MatchPolicy
	log    zerolog.Logger

	// onStep, if set, observes every applied key event and the shortcut
	// events it produced, before they are delivered. Only tests set it.
	onStep func(keyEvent, []Event)
}

type Option func(*Listener)

// WithOpener replaces DeviceOpener, e.g. to read recorded input.
func WithOpener(o Opener) Option {
	return func(l *Listener) { l.opener = o }
}

// WithLogger sets the logger used for device and stream diagnostics.
// The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Listener) { l.log = log }
}

func WithMatchPolicy(p MatchPolicy) Option {
	return func(l *Listener) { l.policy = p }
}

func NewListener(opts ...Option) *Listener {
	l := &Listener{
		opener: DeviceOpener,
		policy: MatchAtLeast,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add registers s. It reports false if s was already registered. A new
// shortcut starts Released and is evaluated on the next key event, so it
// fires right away if its keys are already held.
func (l *Listener) Add(s Shortcut) bool {
	return l.reg.add(s)
}

// Remove unregisters s. No Released event is sent for it.
func (l *Listener) Remove(s Shortcut) bool {
	return l.reg.remove(s)
}

// Shortcuts returns the registered shortcuts in registration order.
func (l *Listener) Shortcuts() []Shortcut {
	return l.reg.shortcuts()
}

// Listen opens every device in paths and starts reporting shortcut events.
// If any device cannot be opened, the ones already opened are closed and
// the *OpenError is returned; no events are produced.
//
// The stream ends when all devices have gone away, when ctx is cancelled
// or when Close is called. A device that fails while reading only ends its
// own part of the stream.
func (l *Listener) Listen(ctx context.Context, paths []string) (*Stream, error) {
	if len(paths) == 0 {
		return nil, ErrNoDevices
	}

	id := uuid.NewString()
	log := l.log.With().Str("listen_id", id).Logger()

	sessions := make([]*session, 0, len(paths))
	for _, path := range paths {
		dev, err := l.opener.Open(path)
		if err != nil {
			for _, s := range sessions {
				s.close()
			}
			var oe *OpenError
			if !errors.As(err, &oe) {
				err = &OpenError{Path: path, Err: classify(ErrNotADevice, err)}
			}
			log.Error().Err(err).Msg("listen_open_failed")
			return nil, err
		}
		sessions = append(sessions, newSession(path, dev, log))
	}

	ctx, cancel := context.WithCancel(ctx)
	st := &Stream{
		id:       id,
		paths:    slices.Clone(paths),
		sessions: sessions,
		events:   make(chan Event),
		cancel:   cancel,
		log:      log,
		onStep:   l.onStep,
	}

	merged := make(chan keyEvent)
	var devices sync.WaitGroup
	for _, s := range sessions {
		devices.Add(1)
		st.wg.Add(1)
		go func() {
			defer st.wg.Done()
			defer devices.Done()
			s.run(ctx, merged)
		}()
	}

	st.wg.Add(3)
	go func() {
		defer st.wg.Done()
		devices.Wait()
		close(merged)
	}()
	go func() {
		defer st.wg.Done()
		<-ctx.Done()
		st.closeDevices()
	}()
	go func() {
		defer st.wg.Done()
		st.loop(ctx, merged, newTable(&l.reg, l.policy))
	}()

	log.Info().Strs("devices", paths).Str("policy", l.policy.String()).Msg("listen_start")
	return st, nil
}

// Stream is the event stream of one Listen call.
type Stream struct {
	id       string
	paths    []string
	sessions []*session
	events   chan Event
	cancel   context.CancelFunc
	log      zerolog.Logger
	onStep   func(keyEvent, []Event)

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Events returns the shortcut events in the order they happened. The
// channel is closed when the stream ends. Callers must keep receiving
// until then or call Close.
func (st *Stream) Events() <-chan Event {
	return st.events
}

// ID identifies the stream in logs.
func (st *Stream) ID() string {
	return st.id
}

// Devices returns the device paths the stream was opened with.
func (st *Stream) Devices() []string {
	return slices.Clone(st.paths)
}

// Close stops the stream. Every device handle is released and every
// goroutine of the stream has exited when Close returns. It is safe to
// call Close more than once and after the stream ended on its own.
func (st *Stream) Close() error {
	st.closeOnce.Do(func() {
		st.cancel()
		st.closeDevices()
		st.wg.Wait()
	})
	return nil
}

func (st *Stream) closeDevices() {
	for _, s := range st.sessions {
		s.close()
	}
}

// loop is the only reader of merged and the only writer of held and tbl.
func (st *Stream) loop(ctx context.Context, merged <-chan keyEvent, tbl *table) {
	defer close(st.events)
	defer st.cancel()

	held := newKeyState()
	var count int
	defer func() {
		st.log.Info().Int("events", count).Msg("listen_end")
	}()

	for {
		var ev keyEvent
		var ok bool
		select {
		case ev, ok = <-merged:
			if !ok {
				return
			}
		case <-ctx.Done():
			return
		}

		held.apply(ev)
		changed := tbl.evaluate(held)
		if st.onStep != nil {
			st.onStep(ev, changed)
		}
		for _, out := range changed {
			st.log.Debug().
				Str("shortcut", out.Shortcut.String()).
				Str("state", out.State.String()).
				Str("source", ev.Source).
				Msg("shortcut_event")
			select {
			case st.events <- out:
				count++
			case <-ctx.Done():
				return
			}
		}
	}
}
