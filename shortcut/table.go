package shortcut

import "sync"

// registration is one entry of the registry. serial changes when a shortcut
// is removed and added again, so per-listen state never outlives it.
type registration struct {
	shortcut Shortcut
	serial   uint64
}

// registry is the ordered set of registered shortcuts, shared between the
// caller (Add/Remove) and every running evaluation loop.
type registry struct {
	mu      sync.Mutex
	entries []registration
	next    uint64
}

func (r *registry) add(s Shortcut) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.shortcut == s {
			return false
		}
	}
	r.next++
	r.entries = append(r.entries, registration{shortcut: s, serial: r.next})
	return true
}

func (r *registry) remove(s Shortcut) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.shortcut == s {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns the registrations in registration order.
func (r *registry) snapshot() []registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]registration, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *registry) shortcuts() []Shortcut {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Shortcut, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.shortcut
	}
	return out
}

// table holds the last emitted state of every registered shortcut for one
// Listen call. Absent entries are Released.
type table struct {
	reg    *registry
	policy MatchPolicy
	last   map[uint64]State
}

func newTable(reg *registry, policy MatchPolicy) *table {
	return &table{reg: reg, policy: policy, last: make(map[uint64]State)}
}

// evaluate compares held against every registered shortcut, in registration
// order, and returns one event per shortcut whose state changed.
func (t *table) evaluate(held *KeyState) []Event {
	entries := t.reg.snapshot()

	var events []Event
	live := make(map[uint64]struct{}, len(entries))
	for _, e := range entries {
		live[e.serial] = struct{}{}

		satisfied := e.shortcut.Matches(held, t.policy)
		switch last := t.last[e.serial]; {
		case satisfied && last == Released:
			t.last[e.serial] = Pressed
			events = append(events, Event{Shortcut: e.shortcut, State: Pressed})
		case !satisfied && last == Pressed:
			t.last[e.serial] = Released
			events = append(events, Event{Shortcut: e.shortcut, State: Released})
		}
	}

	// Removed shortcuts are dropped silently.
	for serial := range t.last {
		if _, ok := live[serial]; !ok {
			delete(t.last, serial)
		}
	}
	return events
}
