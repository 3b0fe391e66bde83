package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Fire       key.Binding
	Start      key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Fire, k.Start},
		{k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Host-only bindings (scores, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	}
	return core.ActionNone
}

// isMovement reports whether a is one of the four held movement actions.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// HoldTracker turns terminal key presses into key-down/key-up pairs.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until no repeat has arrived for the hold window.
type HoldTracker struct {
	hold time.Duration
	last map[core.Action]time.Time
}

// defaultKeyHold is used when no positive hold window is configured.
const defaultKeyHold = 150 * time.Millisecond

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = defaultKeyHold
	}
	return &HoldTracker{
		hold: hold,
		last: make(map[core.Action]time.Time),
	}
}

// opposite pairs movement keys; a terminal only repeats the latest key, so
// pressing one direction releases the other at once.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}

// Press records a press of a. The first press of a released key emits a
// key-down into frame; repeats only extend the hold.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if o, ok := opposite[a]; ok {
		if _, held := h.last[o]; held {
			frame.KeyUp(o)
			delete(h.last, o)
		}
	}
	if _, held := h.last[a]; !held {
		frame.KeyDown(a)
	}
	h.last[a] = now
}

// Expire emits a key-up for every key whose hold window has passed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	// Fixed order keeps the emitted events deterministic
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		t, held := h.last[a]
		if held && now.Sub(t) >= h.hold {
			frame.KeyUp(a)
			delete(h.last, a)
		}
	}
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.last[a]
	return held
}

// ReleaseAll emits a key-up for every held key.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if _, held := h.last[a]; held {
			frame.KeyUp(a)
			delete(h.last, a)
		}
	}
}
