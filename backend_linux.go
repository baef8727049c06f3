//go:build linux

package main

import (
	"context"

	"evshortcut/discover"
	"evshortcut/log"
	"evshortcut/shortcut"
)

type evdevBackend struct {
	l       *shortcut.Listener
	set     settings
	watcher *discover.Watcher
}

func newBackend(set settings) (backend, error) {
	l := shortcut.NewListener(
		shortcut.WithLogger(log.Logger()),
		shortcut.WithMatchPolicy(set.policy),
	)
	for _, s := range set.shortcuts {
		l.Add(s)
	}

	b := &evdevBackend{l: l, set: set}
	if set.watch && len(set.devices) == 0 {
		w, err := discover.NewWatcher(set.patterns, discover.DefaultSettle, discover.WithLogger(log.Logger()))
		if err != nil {
			log.Warnf("device watch disabled: %v", err)
		} else {
			b.watcher = w
		}
	}
	return b, nil
}

func (b *evdevBackend) Listen(ctx context.Context) (source, []string, error) {
	paths := b.set.devices
	if len(paths) == 0 {
		var err error
		paths, err = discover.Keyboards(b.set.patterns)
		if err != nil {
			return nil, nil, err
		}
	}
	st, err := b.l.Listen(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	log.SessionStart(st.Devices(), len(b.l.Shortcuts()), b.set.policy.String())
	return st, st.Devices(), nil
}

func (b *evdevBackend) Changes() <-chan struct{} {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Changes()
}

func (b *evdevBackend) Close() error {
	if b.watcher != nil {
		return b.watcher.Close()
	}
	return nil
}
