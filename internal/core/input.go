package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionJump           // W, Up arrow, Space - jump
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one that is held rather than tapped.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HoldTracker turns discrete key presses into held state.
//
// Terminals report key presses (and auto-repeats) but never releases, so a
// movement action counts as held for a number of ticks after its last press.
// Pressing one horizontal direction releases the other immediately.
type HoldTracker struct {
	holdTicks int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that keeps actions held for holdTicks ticks.
// Values below 1 are treated as 1 (the press is seen by exactly one tick).
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: max(holdTicks, 1),
		remaining: make(map[Action]int),
	}
}

// SetHoldTicks changes how long future presses stay held.
func (h *HoldTracker) SetHoldTicks(holdTicks int) {
	h.holdTicks = max(holdTicks, 1)
}

// Press records a press of the given action.
func (h *HoldTracker) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(h.remaining, ActionRight)
	case ActionRight:
		delete(h.remaining, ActionLeft)
	}
	h.remaining[a] = h.holdTicks
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Apply marks every held action on the frame.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			f.Set(a)
		}
	}
}

// Advance moves the tracker forward one tick, releasing expired actions.
func (h *HoldTracker) Advance() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}
