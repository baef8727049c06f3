package shortcut

import "testing"

func TestKeyStateApply(t *testing.T) {
	s := newKeyState()

	s.apply(keyEvent{Key: KeyA, Transition: transitionDown})
	s.apply(keyEvent{Key: KeyLeftCtrl, Transition: transitionDown})
	if !s.Contains(KeyA) || !s.Contains(KeyLeftCtrl) {
		t.Fatalf("held = %v", s.Held())
	}

	s.apply(keyEvent{Key: KeyA, Transition: transitionHeld})
	if s.Len() != 2 {
		t.Errorf("held after repeat = %v", s.Held())
	}

	s.apply(keyEvent{Key: KeyA, Transition: transitionUp})
	if s.Contains(KeyA) {
		t.Error("KeyA still held after up")
	}

	// Up without a prior down.
	s.apply(keyEvent{Key: KeyZ, Transition: transitionUp})
	if got := s.Held(); len(got) != 1 || got[0] != KeyLeftCtrl {
		t.Errorf("held = %v", got)
	}
}

func TestKeyStateHeldSorted(t *testing.T) {
	s := NewKeyState(KeyZ, KeyA, KeyEsc)
	got := s.Held()
	want := []Key{KeyEsc, KeyA, KeyZ}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if !s.ContainsAny(KeyQ, KeyZ) || s.ContainsAny(KeyQ, KeyW) {
		t.Error("ContainsAny mismatch")
	}
}
