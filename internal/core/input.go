package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionSelect         // Enter, Space - select the tile under the cursor
	ActionCancel         // Escape - drop the selection
	ActionHint           // H - show a possible move
	ActionRestart        // R - restart the game
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionHint:
		return "Hint"
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

// Click is a pointer press in screen cells.
type Click struct {
	X, Y int
}

// InputFrame is the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Clicks holds pointer presses in arrival order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a pointer press.
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return len(f.Clicks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
