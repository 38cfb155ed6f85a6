// Package animation provides the tick-driven scalar used for list scrolling
// and selection indicator motion.
//
// Motion is measured in ticks, never wall-clock time, so replaying the same
// sequence of SetTarget/Update calls reproduces the same positions exactly.
package animation

// Value is an integer that moves toward a target by at most Step per tick.
type Value struct {
	current int
	target  int
	step    int
}

// New creates a Value resting at current. A step below 1 is raised to 1.
func New(current, step int) Value {
	if step < 1 {
		step = 1
	}
	return Value{current: current, target: current, step: step}
}

// Restore rebuilds a Value mid-flight, e.g. from a saved snapshot.
func Restore(current, target, step int) Value {
	v := New(current, step)
	v.target = target
	return v
}

// StepFor returns the per-tick step that covers distance in frames ticks.
// A frame count below 1 means "jump", i.e. the step equals the distance.
func StepFor(distance, frames int) int {
	if distance < 0 {
		distance = -distance
	}
	if frames < 1 {
		frames = 1
	}
	step := (distance + frames - 1) / frames
	if step < 1 {
		return 1
	}
	return step
}

// SetTarget changes the destination without touching the current position.
func (v *Value) SetTarget(target int) {
	v.target = target
}

// Jump moves straight to target.
func (v *Value) Jump(target int) {
	v.current = target
	v.target = target
}

// Update advances one tick toward the target and never overshoots it.
func (v *Value) Update() {
	if v.current == v.target {
		return
	}

	// The unsigned difference is exact even when the signed one would overflow.
	step := uint(v.step)
	if v.current < v.target {
		if uint(v.target)-uint(v.current) <= step {
			v.current = v.target
		} else {
			v.current += v.step
		}
		return
	}

	if uint(v.current)-uint(v.target) <= step {
		v.current = v.target
	} else {
		v.current -= v.step
	}
}

func (v Value) Current() int { return v.current }
func (v Value) Target() int  { return v.target }
func (v Value) Step() int    { return v.step }

// Done reports whether the value has reached its target.
func (v Value) Done() bool {
	return v.current == v.target
}
