package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the runner to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, pointer-down, touch-start
	ActionStart        // Enter - start a run from the idle screen
	ActionReset        // R - back to the idle screen after game over
	ActionQuit         // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
