package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionFire         // Space
	ActionStart        // Enter - same as clicking Play
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind classifies a polled input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventPointerDown
	EventQuit
)

// Event is one discrete input event collected by a host during a tick.
type Event struct {
	Kind   EventKind
	Action Action // Key events only
	X, Y   int    // Pointer events only, in viewport coordinates
}

// InputFrame holds the events collected for one simulation tick, in arrival order.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 8)}
}

// KeyDown appends a key-down event.
func (f *InputFrame) KeyDown(a Action) {
	f.Events = append(f.Events, Event{Kind: EventKeyDown, Action: a})
}

// KeyUp appends a key-up event.
func (f *InputFrame) KeyUp(a Action) {
	f.Events = append(f.Events, Event{Kind: EventKeyUp, Action: a})
}

// PointerDown appends a click at (x, y).
func (f *InputFrame) PointerDown(x, y int) {
	f.Events = append(f.Events, Event{Kind: EventPointerDown, X: x, Y: y})
}

// Quit appends a quit request.
func (f *InputFrame) Quit() {
	f.Events = append(f.Events, Event{Kind: EventQuit, Action: ActionQuit})
}

// Has reports whether a key-down for a was collected this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Kind == EventKeyDown && e.Action == a {
			return true
		}
	}
	return false
}

// Len returns the number of collected events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
