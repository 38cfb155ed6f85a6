package interaction

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/animation"
)

// ErrInvalidTiming is returned when a single-touch adapter's ignore time is
// not strictly below its max time.
var ErrInvalidTiming = errors.New("interaction: ignore time must be less than max time")

// SingleTouch decodes a single button sampled once per tick.
//
// A short press (longer than IgnoreTime ticks, released before MaxTime)
// produces Next on release. Holding for MaxTime ticks produces Select on
// that tick, once. Presses of IgnoreTime ticks or fewer are discarded.
type SingleTouch struct {
	IgnoreTime uint32
	MaxTime    uint32
}

// NewSingleTouch validates the timing and returns the adapter.
func NewSingleTouch(ignoreTime, maxTime uint32) (SingleTouch, error) {
	if ignoreTime >= maxTime {
		return SingleTouch{}, fmt.Errorf("%w: ignore=%d max=%d", ErrInvalidTiming, ignoreTime, maxTime)
	}
	return SingleTouch{IgnoreTime: ignoreTime, MaxTime: maxTime}, nil
}

func (s SingleTouch) HandleInput(state *DecodeState, pressed bool) InputState {
	if pressed {
		if state.HoldTicks >= s.MaxTime {
			return Idle
		}

		state.HoldTicks++
		if state.HoldTicks == s.MaxTime {
			return Active(Select)
		}
		if state.HoldTicks <= s.IgnoreTime {
			return Idle
		}
		progress := animation.Interpolate(int(state.HoldTicks), int(s.IgnoreTime), int(s.MaxTime), 0, 255)
		return InProgress(uint8(progress))
	}

	held := state.HoldTicks
	state.HoldTicks = 0

	switch {
	case held <= s.IgnoreTime:
		return Idle
	case held < s.MaxTime:
		return Active(Next)
	default:
		return Idle
	}
}
