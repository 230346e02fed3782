package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Press(3, 4)
	f.Release(ActionRight)

	if len(f.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(f.Events))
	}
	want := []EventKind{EventKeyDown, EventPointerPress, EventKeyUp}
	for i, k := range want {
		if f.Events[i].Kind != k {
			t.Errorf("event %d kind = %s, expected %s", i, f.Events[i].Kind, k)
		}
	}
	if !f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be false")
	}
}

func TestInputFrameQuit(t *testing.T) {
	f := NewInputFrame()
	f.Quit()

	if !f.Has(ActionQuit) {
		t.Error("Quit should mark ActionQuit")
	}
	if f.Events[0].Kind != EventQuit {
		t.Errorf("Quit event kind = %s", f.Events[0].Kind)
	}
}

func TestInputFrameApplyRoundTrip(t *testing.T) {
	src := NewInputFrame()
	src.Set(ActionFire)
	src.Press(10, 2)
	src.Release(ActionLeft)
	src.Quit()

	dst := NewInputFrame()
	for _, ev := range src.Events {
		dst.Apply(ev)
	}

	if len(dst.Events) != len(src.Events) {
		t.Fatalf("Apply produced %d events, expected %d", len(dst.Events), len(src.Events))
	}
	for i := range src.Events {
		if dst.Events[i] != src.Events[i] {
			t.Errorf("event %d = %+v, expected %+v", i, dst.Events[i], src.Events[i])
		}
	}
	if !dst.Has(ActionFire) || !dst.Has(ActionQuit) {
		t.Error("Apply should keep Actions in sync")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if !f.Empty() || f.Has(ActionLeft) {
		t.Error("Clear should drop events and actions")
	}
	if clone.Empty() || !clone.Has(ActionLeft) {
		t.Error("Clone should not share state with the original")
	}
}
