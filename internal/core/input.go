package core

// Action represents a meta intent from the keyboard/event collaborator,
// abstracted from physical key presses. Steering does not go through actions;
// it is polled from an input source by the state machine.
type Action int

const (
	ActionNone             Action = iota
	ActionStart                   // Space, Enter - leave the title screen
	ActionRestart                 // R - restart after game over
	ActionPause                   // P - pause/unpause (device mode only)
	ActionToggleGrid              // G - show/hide grid lines
	ActionToggleFullscreen        // F - enter/leave the alternate screen
	ActionQuit                    // Q, Ctrl+C - persist and exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionToggleGrid:
		return "ToggleGrid"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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
