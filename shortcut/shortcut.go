// Package shortcut provides global keyboard shortcuts read straight from
// Linux evdev device nodes, so they work under X11, Wayland and on a bare
// console alike.
//
// A Listener holds the registered shortcuts. Listen opens the given device
// nodes, merges their key events into one stream and reports every time a
// shortcut becomes pressed or released.
package shortcut

import (
	"fmt"
	"strings"
)

// Shortcut is a chord: zero or more modifiers plus one key. Shortcuts are
// comparable values; two shortcuts are equal when their modifier sets and
// keys are equal.
type Shortcut struct {
	Modifiers Modifiers
	Key       Key
}

// New returns the shortcut mods+key.
func New(key Key, mods ...Modifier) Shortcut {
	return Shortcut{Modifiers: NewModifiers(mods...), Key: key}
}

// Parse reads the textual form produced by String, e.g. "<Ctrl><Alt>-KeyLeft"
// or "KeyF12".
func Parse(s string) (Shortcut, error) {
	s = strings.TrimSpace(s)
	if mods, key, ok := strings.Cut(s, "-"); ok && strings.HasPrefix(mods, "<") {
		m, err := ParseModifiers(mods)
		if err != nil {
			return Shortcut{}, fmt.Errorf("parsing shortcut %q: %w", s, err)
		}
		k, err := ParseKey(key)
		if err != nil {
			return Shortcut{}, fmt.Errorf("parsing shortcut %q: %w", s, err)
		}
		return Shortcut{Modifiers: m, Key: k}, nil
	}
	k, err := ParseKey(s)
	if err != nil {
		return Shortcut{}, fmt.Errorf("parsing shortcut %q: %w", s, err)
	}
	return Shortcut{Key: k}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Shortcut {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

func (s Shortcut) String() string {
	if s.Modifiers.IsEmpty() {
		return s.Key.String()
	}
	return s.Modifiers.String() + "-" + s.Key.String()
}

// Identifier returns a form of the shortcut usable as an identifier,
// e.g. "AltCtrl_KeyLeft".
func (s Shortcut) Identifier() string {
	r := strings.NewReplacer("<", "", ">", "", "-", "_")
	return r.Replace(s.String())
}

func (s Shortcut) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shortcut) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MatchPolicy decides how held modifiers that the shortcut does not ask for
// are treated.
type MatchPolicy int

const (
	// MatchAtLeast accepts extra held modifiers: <Meta>-KeyN fires while
	// Meta+Shift+N is held.
	MatchAtLeast MatchPolicy = iota
	// MatchExact rejects any held modifier key not covered by the shortcut.
	MatchExact
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchAtLeast:
		return "at-least"
	case MatchExact:
		return "exact"
	}
	return fmt.Sprintf("MatchPolicy(%d)", int(p))
}

// ParseMatchPolicy accepts "at-least" (or "") and "exact".
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "at-least", "atleast":
		return MatchAtLeast, nil
	case "exact":
		return MatchExact, nil
	}
	return 0, fmt.Errorf("unknown match policy %q (use at-least or exact)", s)
}

// Matches reports whether the held keys satisfy the shortcut.
func (s Shortcut) Matches(held *KeyState, policy MatchPolicy) bool {
	if !held.Contains(s.Key) {
		return false
	}
	for _, m := range s.Modifiers.List() {
		if !held.ContainsAny(modifierKeys[m]...) {
			return false
		}
	}
	if policy == MatchExact {
		for _, k := range modifierKeyList {
			if k == s.Key || !held.Contains(k) {
				continue
			}
			if !s.Modifiers.covers(k) {
				return false
			}
		}
	}
	return true
}

// State is the state of a shortcut. Every shortcut starts Released.
type State uint8

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Event reports that a shortcut changed state.
type Event struct {
	Shortcut Shortcut
	State    State
}

func (e Event) String() string {
	return e.Shortcut.String() + " " + e.State.String()
}
