package main

import (
	"context"

	"evshortcut/shortcut"
)

// settings is the resolved listening configuration.
type settings struct {
	shortcuts []shortcut.Shortcut
	names     map[shortcut.Shortcut]string
	// devices are explicit device nodes. When empty, patterns are used.
	devices  []string
	patterns []string
	watch    bool
	policy   shortcut.MatchPolicy
}

// source is one running listen.
type source interface {
	Events() <-chan shortcut.Event
	Close() error
}

// backend turns keyboard input into shortcut events for the configured
// shortcuts.
type backend interface {
	// Listen starts a new source and reports the devices it reads.
	Listen(ctx context.Context) (source, []string, error)
	// Changes fires when the set of keyboards may have changed. It is nil
	// when the backend does not track devices.
	Changes() <-chan struct{}
	Close() error
}

// listenOne adapts a backend built for a single shortcut to the doctor's
// source signature.
func listenOne(newBackend func(settings) (backend, error), set settings) func(context.Context, shortcut.Shortcut) (<-chan shortcut.Event, func(), error) {
	return func(ctx context.Context, s shortcut.Shortcut) (<-chan shortcut.Event, func(), error) {
		set.shortcuts = []shortcut.Shortcut{s}
		set.watch = false
		b, err := newBackend(set)
		if err != nil {
			return nil, nil, err
		}
		src, _, err := b.Listen(ctx)
		if err != nil {
			b.Close()
			return nil, nil, err
		}
		return src.Events(), func() {
			src.Close()
			b.Close()
		}, nil
	}
}
