package doctor

import (
	"context"
	"errors"
	"testing"
	"time"

	"evshortcut/shortcut"
)

var metaN = shortcut.New(shortcut.KeyN, shortcut.Meta)

func fakeSource(events ...shortcut.Event) (Source, *bool) {
	stopped := new(bool)
	src := func(ctx context.Context, s shortcut.Shortcut) (<-chan shortcut.Event, func(), error) {
		ch := make(chan shortcut.Event, len(events))
		for _, ev := range events {
			ch <- ev
		}
		return ch, func() { *stopped = true }, nil
	}
	return src, stopped
}

func TestCheckShortcutPass(t *testing.T) {
	other := shortcut.New(shortcut.KeyQ, shortcut.Ctrl)
	src, stopped := fakeSource(
		shortcut.Event{Shortcut: other, State: shortcut.Pressed},
		shortcut.Event{Shortcut: metaN, State: shortcut.Pressed},
		shortcut.Event{Shortcut: other, State: shortcut.Released},
		shortcut.Event{Shortcut: metaN, State: shortcut.Released},
	)
	if !checkShortcut(metaN, src, time.Second) {
		t.Fatal("expected pass")
	}
	if !*stopped {
		t.Error("source not stopped")
	}
}

func TestCheckShortcutTimeout(t *testing.T) {
	src, _ := fakeSource(shortcut.Event{Shortcut: metaN, State: shortcut.Pressed})
	if checkShortcut(metaN, src, 50*time.Millisecond) {
		t.Fatal("expected timeout without release")
	}
}

func TestCheckShortcutListenError(t *testing.T) {
	src := func(ctx context.Context, s shortcut.Shortcut) (<-chan shortcut.Event, func(), error) {
		return nil, nil, errors.New("permission denied")
	}
	if checkShortcut(metaN, src, time.Second) {
		t.Fatal("expected failure")
	}
}

func TestCheckShortcutSourceEnds(t *testing.T) {
	src := func(ctx context.Context, s shortcut.Shortcut) (<-chan shortcut.Event, func(), error) {
		ch := make(chan shortcut.Event)
		close(ch)
		return ch, func() {}, nil
	}
	if checkShortcut(metaN, src, time.Second) {
		t.Fatal("expected failure when the source ends")
	}
}
