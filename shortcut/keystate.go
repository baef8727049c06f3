package shortcut

import "slices"

// KeyState is the set of keys currently held on any device of one Listen
// call. It is not safe for concurrent use; the listener updates it from a
// single goroutine.
type KeyState struct {
	held map[Key]struct{}
}

func newKeyState() *KeyState {
	return &KeyState{held: make(map[Key]struct{})}
}

// NewKeyState returns a state with keys held.
func NewKeyState(keys ...Key) *KeyState {
	s := newKeyState()
	for _, k := range keys {
		s.held[k] = struct{}{}
	}
	return s
}

// apply records ev. An up for a key that was never seen down is a no-op:
// listening may start while a key is already held.
func (s *KeyState) apply(ev keyEvent) {
	switch ev.Transition {
	case transitionDown:
		s.held[ev.Key] = struct{}{}
	case transitionUp:
		delete(s.held, ev.Key)
	}
}

func (s *KeyState) Contains(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// ContainsAny reports whether at least one of keys is held.
func (s *KeyState) ContainsAny(keys ...Key) bool {
	for _, k := range keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// Held returns the held keys ordered by code.
func (s *KeyState) Held() []Key {
	keys := make([]Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *KeyState) Len() int {
	return len(s.held)
}
