package interaction

import "github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"

// KeyEvent is a discrete key transition from a keyboard-like device.
type KeyEvent struct {
	Button constants.VirtualButton
	Down   bool
	Repeat bool
}

// Keys decodes key transitions. Actions fire on key-up; an auto-repeated
// key-down reports a fully held key so the indicator can show it.
type Keys struct {
	PageSize int
}

// NewKeys returns a Keys adapter that pages by pageSize rows.
func NewKeys(pageSize int) Keys {
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	return Keys{PageSize: pageSize}
}

func (k Keys) HandleInput(_ *DecodeState, ev KeyEvent) InputState {
	if ev.Down {
		if ev.Repeat {
			return InProgress(255)
		}
		return Idle
	}

	switch ev.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return Active(Select)
	case constants.VirtualButtonUp:
		return Active(Previous)
	case constants.VirtualButtonDown:
		return Active(Next)
	case constants.VirtualButtonL1, constants.VirtualButtonLeft:
		return Active(Backward(k.PageSize))
	case constants.VirtualButtonR1, constants.VirtualButtonRight:
		return Active(Forward(k.PageSize))
	default:
		return Idle
	}
}
