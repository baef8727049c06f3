// Package gesture tells a quick tap of a shortcut apart from holding it down.
package gesture

import (
	"context"
	"time"

	"evshortcut/shortcut"
)

type Kind int

const (
	// Tap is a shortcut released before the long-press threshold.
	Tap Kind = iota
	// HoldStart is reported once a shortcut has stayed pressed for the
	// threshold.
	HoldStart
	// HoldEnd is the release that follows HoldStart.
	HoldEnd
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case HoldStart:
		return "hold"
	case HoldEnd:
		return "hold-end"
	}
	return "unknown"
}

// Gesture is a classified press of one shortcut.
type Gesture struct {
	Shortcut shortcut.Shortcut
	Kind     Kind
	// Held is how long the shortcut had been pressed when the gesture was
	// reported.
	Held time.Duration
}

func (g Gesture) String() string {
	return g.Shortcut.String() + " " + g.Kind.String()
}

type pending struct {
	id      uint64
	start   time.Time
	timer   *time.Timer
	holding bool
}

type expiry struct {
	shortcut shortcut.Shortcut
	id       uint64
}

// Classify reads shortcut events from in and reports a gesture for each
// press: Tap when released within longPress, otherwise HoldStart when the
// threshold passes and HoldEnd on release. Shortcuts are tracked
// independently. The returned channel is closed when in is closed or ctx is
// done.
func Classify(ctx context.Context, in <-chan shortcut.Event, longPress time.Duration) <-chan Gesture {
	out := make(chan Gesture, 1)
	go run(ctx, in, out, longPress)
	return out
}

func run(ctx context.Context, in <-chan shortcut.Event, out chan<- Gesture, longPress time.Duration) {
	defer close(out)

	expired := make(chan expiry)
	done := make(chan struct{})
	defer close(done)
	pressed := make(map[shortcut.Shortcut]*pending)
	var next uint64
	defer func() {
		for _, p := range pressed {
			p.timer.Stop()
		}
	}()

	emit := func(g Gesture) bool {
		select {
		case out <- g:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-in:
			if !ok {
				return
			}
			switch ev.State {
			case shortcut.Pressed:
				if _, ok := pressed[ev.Shortcut]; ok {
					continue
				}
				next++
				e := expiry{shortcut: ev.Shortcut, id: next}
				pressed[ev.Shortcut] = &pending{
					id:    next,
					start: time.Now(),
					timer: time.AfterFunc(longPress, func() {
						select {
						case expired <- e:
						case <-done:
						}
					}),
				}
			case shortcut.Released:
				p, ok := pressed[ev.Shortcut]
				if !ok {
					continue
				}
				delete(pressed, ev.Shortcut)
				p.timer.Stop()
				kind := Tap
				if p.holding {
					kind = HoldEnd
				}
				if !emit(Gesture{Shortcut: ev.Shortcut, Kind: kind, Held: time.Since(p.start)}) {
					return
				}
			}
		case e := <-expired:
			p, ok := pressed[e.shortcut]
			if !ok || p.id != e.id || p.holding {
				// Released or pressed again since the timer was armed.
				continue
			}
			p.holding = true
			if !emit(Gesture{Shortcut: e.shortcut, Kind: HoldStart, Held: time.Since(p.start)}) {
				return
			}
		}
	}
}
