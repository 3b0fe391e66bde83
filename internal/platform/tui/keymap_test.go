package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"tab is host only", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
		{"ctrl+s is host only", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"p does nothing", runeKey('p'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestHoldTrackerPressEmitsOnce(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	now := time.Now()
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, now, &frame)
	h.Press(core.ActionLeft, now.Add(30*time.Millisecond), &frame)
	h.Press(core.ActionLeft, now.Add(60*time.Millisecond), &frame)

	if frame.Len() != 1 {
		t.Fatalf("frame has %d events, expected a single key-down", frame.Len())
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("expected key-down for left")
	}
	if !h.Held(core.ActionLeft) {
		t.Error("left should be held")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	now := time.Now()
	frame := core.NewInputFrame()

	h.Press(core.ActionRight, now, &frame)
	frame.Clear()

	// A repeat inside the window extends the hold
	h.Press(core.ActionRight, now.Add(80*time.Millisecond), &frame)
	h.Expire(now.Add(150*time.Millisecond), &frame)
	if frame.Len() != 0 {
		t.Errorf("frame has %d events, expected none while repeats arrive", frame.Len())
	}

	h.Expire(now.Add(200*time.Millisecond), &frame)
	if frame.Len() != 1 {
		t.Fatalf("frame has %d events, expected one key-up", frame.Len())
	}
	ev := frame.Events[0]
	if ev.Kind != core.EventKeyUp || ev.Action != core.ActionRight {
		t.Errorf("event = %+v, expected key-up for right", ev)
	}
	if h.Held(core.ActionRight) {
		t.Error("right should be released")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, now, &frame)
	frame.Clear()
	h.Press(core.ActionRight, now.Add(10*time.Millisecond), &frame)

	if frame.Len() != 2 {
		t.Fatalf("frame has %d events, expected key-up then key-down", frame.Len())
	}
	if frame.Events[0].Kind != core.EventKeyUp || frame.Events[0].Action != core.ActionLeft {
		t.Errorf("first event = %+v, expected key-up for left", frame.Events[0])
	}
	if frame.Events[1].Kind != core.EventKeyDown || frame.Events[1].Action != core.ActionRight {
		t.Errorf("second event = %+v, expected key-down for right", frame.Events[1])
	}
	if h.Held(core.ActionLeft) {
		t.Error("left should be released by right")
	}
}

func TestHoldTrackerKeepsPerpendicularKeys(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, now, &frame)
	h.Press(core.ActionUp, now, &frame)

	if !h.Held(core.ActionLeft) || !h.Held(core.ActionUp) {
		t.Error("left and up should both be held")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Now()
	frame := core.NewInputFrame()

	h.Press(core.ActionDown, now, &frame)
	h.Press(core.ActionRight, now, &frame)
	frame.Clear()

	h.ReleaseAll(&frame)
	if frame.Len() != 2 {
		t.Fatalf("frame has %d events, expected 2 key-ups", frame.Len())
	}
	// Fixed order: left, right, up, down
	if frame.Events[0].Action != core.ActionRight || frame.Events[1].Action != core.ActionDown {
		t.Errorf("events = %+v, expected right then down", frame.Events)
	}
	if h.Held(core.ActionDown) || h.Held(core.ActionRight) {
		t.Error("no key should be held after ReleaseAll")
	}
}

func TestHoldTrackerDefaultWindow(t *testing.T) {
	h := NewHoldTracker(0)
	if h.hold != defaultKeyHold {
		t.Errorf("hold = %v, expected %v", h.hold, defaultKeyHold)
	}
}
