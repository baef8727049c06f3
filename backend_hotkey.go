//go:build darwin || windows

package main

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"evshortcut/log"
	"evshortcut/shortcut"
)

var hotkeyKeys = map[shortcut.Key]hotkey.Key{
	shortcut.KeyA: hotkey.KeyA, shortcut.KeyB: hotkey.KeyB, shortcut.KeyC: hotkey.KeyC,
	shortcut.KeyD: hotkey.KeyD, shortcut.KeyE: hotkey.KeyE, shortcut.KeyF: hotkey.KeyF,
	shortcut.KeyG: hotkey.KeyG, shortcut.KeyH: hotkey.KeyH, shortcut.KeyI: hotkey.KeyI,
	shortcut.KeyJ: hotkey.KeyJ, shortcut.KeyK: hotkey.KeyK, shortcut.KeyL: hotkey.KeyL,
	shortcut.KeyM: hotkey.KeyM, shortcut.KeyN: hotkey.KeyN, shortcut.KeyO: hotkey.KeyO,
	shortcut.KeyP: hotkey.KeyP, shortcut.KeyQ: hotkey.KeyQ, shortcut.KeyR: hotkey.KeyR,
	shortcut.KeyS: hotkey.KeyS, shortcut.KeyT: hotkey.KeyT, shortcut.KeyU: hotkey.KeyU,
	shortcut.KeyV: hotkey.KeyV, shortcut.KeyW: hotkey.KeyW, shortcut.KeyX: hotkey.KeyX,
	shortcut.KeyY: hotkey.KeyY, shortcut.KeyZ: hotkey.KeyZ,

	shortcut.Key0: hotkey.Key0, shortcut.Key1: hotkey.Key1, shortcut.Key2: hotkey.Key2,
	shortcut.Key3: hotkey.Key3, shortcut.Key4: hotkey.Key4, shortcut.Key5: hotkey.Key5,
	shortcut.Key6: hotkey.Key6, shortcut.Key7: hotkey.Key7, shortcut.Key8: hotkey.Key8,
	shortcut.Key9: hotkey.Key9,

	shortcut.KeyF1: hotkey.KeyF1, shortcut.KeyF2: hotkey.KeyF2, shortcut.KeyF3: hotkey.KeyF3,
	shortcut.KeyF4: hotkey.KeyF4, shortcut.KeyF5: hotkey.KeyF5, shortcut.KeyF6: hotkey.KeyF6,
	shortcut.KeyF7: hotkey.KeyF7, shortcut.KeyF8: hotkey.KeyF8, shortcut.KeyF9: hotkey.KeyF9,
	shortcut.KeyF10: hotkey.KeyF10, shortcut.KeyF11: hotkey.KeyF11, shortcut.KeyF12: hotkey.KeyF12,

	shortcut.KeySpace:  hotkey.KeySpace,
	shortcut.KeyEnter:  hotkey.KeyReturn,
	shortcut.KeyEsc:    hotkey.KeyEscape,
	shortcut.KeyDelete: hotkey.KeyDelete,
	shortcut.KeyTab:    hotkey.KeyTab,
	shortcut.KeyLeft:   hotkey.KeyLeft,
	shortcut.KeyRight:  hotkey.KeyRight,
	shortcut.KeyUp:     hotkey.KeyUp,
	shortcut.KeyDown:   hotkey.KeyDown,
}

// newHotkey maps s onto the system hotkey API. Sided modifiers lose their
// side.
func newHotkey(s shortcut.Shortcut) (*hotkey.Hotkey, error) {
	key, ok := hotkeyKeys[s.Key]
	if !ok {
		return nil, fmt.Errorf("%s: key not supported by the system hotkey API", s)
	}
	var mods []hotkey.Modifier
	for _, m := range s.Modifiers.List() {
		hm, ok := hotkeyMods[m]
		if !ok {
			return nil, fmt.Errorf("%s: modifier %s not supported by the system hotkey API", s, m)
		}
		mods = append(mods, hm)
	}
	return hotkey.New(mods, key), nil
}

type hotkeyBackend struct {
	set settings
}

func newBackend(set settings) (backend, error) {
	if set.policy == shortcut.MatchExact {
		log.Warn("exact matching is not available with the system hotkey API")
	}
	return &hotkeyBackend{set: set}, nil
}

func (b *hotkeyBackend) Listen(ctx context.Context) (source, []string, error) {
	src := &hotkeySource{
		events: make(chan shortcut.Event),
		done:   make(chan struct{}),
	}
	for _, s := range b.set.shortcuts {
		hk, err := newHotkey(s)
		if err != nil {
			src.Close()
			return nil, nil, err
		}
		if err := hk.Register(); err != nil {
			src.Close()
			return nil, nil, fmt.Errorf("registering %s: %w", s, err)
		}
		src.hks = append(src.hks, hk)
		src.wg.Add(1)
		go src.forward(ctx, s, hk)
	}
	log.SessionStart(nil, len(b.set.shortcuts), b.set.policy.String())
	return src, nil, nil
}

func (b *hotkeyBackend) Changes() <-chan struct{} { return nil }
func (b *hotkeyBackend) Close() error             { return nil }

type hotkeySource struct {
	hks    []*hotkey.Hotkey
	events chan shortcut.Event
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

func (s *hotkeySource) Events() <-chan shortcut.Event { return s.events }

func (s *hotkeySource) Close() error {
	s.once.Do(func() {
		close(s.done)
		for _, hk := range s.hks {
			hk.Unregister()
		}
		s.wg.Wait()
		close(s.events)
	})
	return nil
}

func (s *hotkeySource) forward(ctx context.Context, sc shortcut.Shortcut, hk *hotkey.Hotkey) {
	defer s.wg.Done()
	for {
		var ev shortcut.Event
		select {
		case <-hk.Keydown():
			ev = shortcut.Event{Shortcut: sc, State: shortcut.Pressed}
		case <-hk.Keyup():
			ev = shortcut.Event{Shortcut: sc, State: shortcut.Released}
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
