package interaction

import "fmt"

// InputStateKind distinguishes idle, partially held and committed input.
type InputStateKind int

const (
	InputIdle InputStateKind = iota
	InputInProgress
	InputActive
)

// InputState is what an Adapter reports for one raw input sample.
// Progress is set for InProgress, Action for Active.
type InputState struct {
	Kind     InputStateKind
	Progress uint8
	Action   Action
}

// Idle is the InputState of an adapter with nothing to report.
var Idle = InputState{Kind: InputIdle}

// InProgress reports partial hold progress, 0..255.
func InProgress(progress uint8) InputState {
	return InputState{Kind: InputInProgress, Progress: progress}
}

// Active reports a committed action.
func Active(action Action) InputState {
	return InputState{Kind: InputActive, Action: action}
}

func (s InputState) IsIdle() bool { return s.Kind == InputIdle }

func (s InputState) String() string {
	switch s.Kind {
	case InputInProgress:
		return fmt.Sprintf("in_progress(%d)", s.Progress)
	case InputActive:
		return fmt.Sprintf("active(%s)", s.Action)
	default:
		return "idle"
	}
}
