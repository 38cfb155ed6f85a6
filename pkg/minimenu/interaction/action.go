// Package interaction turns raw input into the actions the menu engine
// understands: move by N, jump, select, or nothing.
//
// An Adapter decodes one raw input sample into an InputState using a small
// DecodeState. A Controller owns that decode state for a single menu.
package interaction

import "fmt"

// ActionKind enumerates the decoded commands.
type ActionKind int

const (
	ActionNothing ActionKind = iota
	ActionPrevious
	ActionNext
	ActionForwardWrapping
	ActionForward
	ActionBackwardWrapping
	ActionBackward
	ActionBeginning
	ActionEnd
	ActionJumpTo
	ActionSelect
)

var actionNames = map[ActionKind]string{
	ActionNothing:          "nothing",
	ActionPrevious:         "previous",
	ActionNext:             "next",
	ActionForwardWrapping:  "forward_wrapping",
	ActionForward:          "forward",
	ActionBackwardWrapping: "backward_wrapping",
	ActionBackward:         "backward",
	ActionBeginning:        "beginning",
	ActionEnd:              "end",
	ActionJumpTo:           "jump_to",
	ActionSelect:           "select",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// ParseActionKind resolves a name produced by ActionKind.String.
func ParseActionKind(name string) (ActionKind, bool) {
	for kind, n := range actionNames {
		if n == name {
			return kind, true
		}
	}
	return ActionNothing, false
}

// Action is a decoded command. N is only meaningful for the wrapping,
// saturating and jump kinds; negative values count as 0.
type Action struct {
	Kind ActionKind
	N    int
}

var (
	Nothing   = Action{Kind: ActionNothing}
	Previous  = Action{Kind: ActionPrevious}
	Next      = Action{Kind: ActionNext}
	Beginning = Action{Kind: ActionBeginning}
	End       = Action{Kind: ActionEnd}
	Select    = Action{Kind: ActionSelect}
)

func ForwardWrapping(n int) Action  { return Action{Kind: ActionForwardWrapping, N: n} }
func Forward(n int) Action          { return Action{Kind: ActionForward, N: n} }
func BackwardWrapping(n int) Action { return Action{Kind: ActionBackwardWrapping, N: n} }
func Backward(n int) Action         { return Action{Kind: ActionBackward, N: n} }
func JumpTo(n int) Action           { return Action{Kind: ActionJumpTo, N: n} }

// IsNavigation reports whether the action moves the selection.
func (a Action) IsNavigation() bool {
	return a.Kind != ActionNothing && a.Kind != ActionSelect
}

func (a Action) String() string {
	switch a.Kind {
	case ActionForwardWrapping, ActionForward, ActionBackwardWrapping, ActionBackward, ActionJumpTo:
		return fmt.Sprintf("%s(%d)", a.Kind, a.N)
	default:
		return a.Kind.String()
	}
}
