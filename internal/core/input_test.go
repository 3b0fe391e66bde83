package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.KeyDown(ActionLeft)
	f.PointerDown(4, 7)
	f.KeyUp(ActionLeft)
	f.Quit()

	expected := []Event{
		{Kind: EventKeyDown, Action: ActionLeft},
		{Kind: EventPointerDown, X: 4, Y: 7},
		{Kind: EventKeyUp, Action: ActionLeft},
		{Kind: EventQuit, Action: ActionQuit},
	}
	if f.Len() != len(expected) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(expected))
	}
	for i, ev := range f.Events {
		if ev != expected[i] {
			t.Errorf("event %d = %+v, expected %+v", i, ev, expected[i])
		}
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	f.KeyDown(ActionFire)
	f.KeyUp(ActionRight)

	if !f.Has(ActionFire) {
		t.Error("Has(Fire) = false, expected true")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) = true, expected false for a key-up")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(Quit) = true, expected false")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.KeyDown(ActionStart)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if f.Has(ActionStart) {
		t.Error("Has(Start) after Clear = true, expected false")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionFire, "Fire"},
		{ActionStart, "Start"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.action), got, tt.expected)
		}
	}
}
