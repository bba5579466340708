package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - steer left
	ActionRight        // D, Right arrow - steer right
	ActionStop         // S, Down arrow, or synthesized key release - stop steering
	ActionFire         // Space - fire a projectile
	ActionPause        // P - pause/unpause
	ActionQuit         // Q, Ctrl+C - exit session
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
	case ActionStop:
		return "Stop"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
// Fire is counted rather than flagged: every fire press spawns a projectile.
type InputFrame struct {
	Actions map[Action]bool
	Fires   int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionFire {
		f.Fires++
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionFire {
		return f.Fires > 0
	}
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction resolves the steering actions of this frame.
// ok is false when the frame carries no steering intent.
func (f InputFrame) Direction() (dir int, ok bool) {
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case left && !right:
		return -1, true
	case right && !left:
		return 1, true
	case f.Has(ActionStop), left && right:
		return 0, true
	}
	return 0, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Fires = 0
}
