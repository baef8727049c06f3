package shortcut

import "testing"

func TestTableEvaluateTransitions(t *testing.T) {
	var reg registry
	reg.add(metaN)
	tbl := newTable(&reg, MatchAtLeast)

	held := NewKeyState(KeyLeftMeta)
	assertEvents(t, tbl.evaluate(held))

	held.apply(keyEvent{Key: KeyN, Transition: transitionDown})
	assertEvents(t, tbl.evaluate(held), Event{metaN, Pressed})
	assertEvents(t, tbl.evaluate(held))

	held.apply(keyEvent{Key: KeyN, Transition: transitionUp})
	assertEvents(t, tbl.evaluate(held), Event{metaN, Released})
	assertEvents(t, tbl.evaluate(held))
}

func TestTableRemoveDropsState(t *testing.T) {
	var reg registry
	reg.add(metaN)
	tbl := newTable(&reg, MatchAtLeast)
	held := NewKeyState(KeyLeftMeta, KeyN)

	assertEvents(t, tbl.evaluate(held), Event{metaN, Pressed})
	reg.remove(metaN)
	assertEvents(t, tbl.evaluate(held))
	if len(tbl.last) != 0 {
		t.Errorf("stale entries: %v", tbl.last)
	}
}

func TestRegistryAddRemove(t *testing.T) {
	var reg registry
	if !reg.add(metaN) || reg.add(metaN) {
		t.Error("duplicate add not rejected")
	}
	reg.add(metaShiftN)
	if got := reg.shortcuts(); len(got) != 2 || got[0] != metaN || got[1] != metaShiftN {
		t.Errorf("got %v", got)
	}
	if !reg.remove(metaN) || reg.remove(metaN) {
		t.Error("remove mismatch")
	}
	if got := reg.shortcuts(); len(got) != 1 || got[0] != metaShiftN {
		t.Errorf("got %v", got)
	}
}
