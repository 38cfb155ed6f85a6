package interaction

import "github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"

// Repeater turns a held direction key into repeated moves on a fixed tick
// schedule: the first repeat after Delay ticks, then one every Interval
// ticks. It sits in front of the Keys adapter.
type Repeater struct {
	Delay    int
	Interval int

	held     constants.VirtualButton
	ticks    int
	repeated bool
}

// NewRepeater returns a repeater with the given timing. Values below 1 use
// the defaults.
func NewRepeater(delay, interval int) *Repeater {
	if delay < 1 {
		delay = constants.DefaultRepeatDelay
	}
	if interval < 1 {
		interval = constants.DefaultRepeatInterval
	}
	return &Repeater{Delay: delay, Interval: interval}
}

func isDirection(b constants.VirtualButton) bool {
	switch b {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// Filter tracks the held direction in events and returns the events to
// pass on. The platform's own repeats of direction keys are dropped, and so
// is the release of a key that has already repeated, so letting go does not
// move one extra row.
func (r *Repeater) Filter(events []KeyEvent) []KeyEvent {
	out := make([]KeyEvent, 0, len(events))
	for _, ev := range events {
		if !isDirection(ev.Button) {
			out = append(out, ev)
			continue
		}

		switch {
		case ev.Down && ev.Repeat:
			continue
		case ev.Down:
			r.held, r.ticks, r.repeated = ev.Button, 0, false
		case ev.Button == r.held:
			repeated := r.repeated
			r.Reset()
			if repeated {
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}

// Tick advances the hold timer and returns a synthetic release of the held
// key when a repeat is due.
func (r *Repeater) Tick() (KeyEvent, bool) {
	if r.held == constants.VirtualButtonUnassigned {
		return KeyEvent{}, false
	}

	r.ticks++
	threshold := r.Interval
	if !r.repeated {
		threshold = r.Delay
	}
	if r.ticks < threshold {
		return KeyEvent{}, false
	}

	r.ticks = 0
	r.repeated = true
	return KeyEvent{Button: r.held}, true
}

// Reset forgets the held key.
func (r *Repeater) Reset() {
	r.held = constants.VirtualButtonUnassigned
	r.ticks = 0
	r.repeated = false
}
