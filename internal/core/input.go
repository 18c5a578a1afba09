package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space - jump in the runner
	ActionConfirm        // Enter - place a mark, confirm a selection
	ActionBack           // B, Escape - back to settings
	ActionRestart        // R - restart after game over
	ActionQuit           // Q - leave the game
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input for a single simulation tick.
// Actions holds edge-triggered presses seen since the previous tick and
// Held holds actions that are currently held down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetHeld marks an action as currently held.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held, or was pressed this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// Repeat returns the frame as seen by later steps of the same tick: this
// frame's presses count as held, and nothing is pressed again.
func (f InputFrame) Repeat() InputFrame {
	r := f.Clone()
	for a, on := range r.Actions {
		if on {
			r.Held[a] = true
		}
	}
	clear(r.Actions)
	return r
}

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report key repeats but never key releases.
const DefaultHoldWindow = 180 * time.Millisecond

// HeldKeys derives a deduplicated "currently held" set from a stream of
// key presses. Each press refreshes the hold until the window runs out.
type HeldKeys struct {
	window   time.Duration
	lastSeen map[Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:   window,
		lastSeen: make(map[Action]time.Time),
	}
}

// Press records a key-down (or repeat) for the action.
func (h *HeldKeys) Press(a Action, now time.Time) {
	h.lastSeen[a] = now
}

// Reset forgets every held key.
func (h *HeldKeys) Reset() {
	clear(h.lastSeen)
}

// Fill writes the actions held at time now into the frame, expiring stale ones.
func (h *HeldKeys) Fill(frame *InputFrame, now time.Time) {
	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		frame.SetHeld(a)
	}
}
