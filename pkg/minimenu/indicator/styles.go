package indicator

import (
	"image"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
)

// Line is a one pixel bar at the left edge that widens with hold progress.
type Line struct{}

func (Line) Padding(*State, int) Insets {
	return Insets{Top: 1, Bottom: 1, Left: 2, Right: 1}
}

func (Line) Shape(_ *State, bounds image.Rectangle, fillWidth int) Shape {
	return Shape{Fill: progressFill(bounds, max(fillWidth, 1))}
}

func (Line) OnTargetChanged(*State)              {}
func (Line) Tick(*State, interaction.InputState) {}

// Border outlines the row and fills it with hold progress.
type Border struct{}

func (Border) Padding(*State, int) Insets {
	return Insets{Top: 2, Bottom: 2, Left: 3, Right: 2}
}

func (Border) Shape(_ *State, bounds image.Rectangle, fillWidth int) Shape {
	return Shape{Outline: bounds, Fill: progressFill(bounds, fillWidth)}
}

func (Border) OnTargetChanged(*State)              {}
func (Border) Tick(*State, interaction.InputState) {}

// Rectangle fills the whole row.
type Rectangle struct{}

func (Rectangle) Padding(*State, int) Insets {
	return Insets{Top: 1, Bottom: 1, Left: 2, Right: 2}
}

func (Rectangle) Shape(_ *State, bounds image.Rectangle, _ int) Shape {
	return Shape{Fill: bounds}
}

func (Rectangle) OnTargetChanged(*State)              {}
func (Rectangle) Tick(*State, interaction.InputState) {}

// Triangle points at the row from the left edge.
type Triangle struct{}

func (Triangle) Padding(_ *State, height int) Insets {
	return Insets{Top: 1, Bottom: 1, Left: triangleWidth(height) + 2, Right: 1}
}

func (Triangle) Shape(_ *State, bounds image.Rectangle, fillWidth int) Shape {
	return triangleShape(bounds, fillWidth, 0)
}

func (Triangle) OnTargetChanged(*State)              {}
func (Triangle) Tick(*State, interaction.InputState) {}

// DefaultPeriod is the AnimatedTriangle nudge period in ticks.
const DefaultPeriod = 40

// nudge is how far the animated triangle travels, in pixels.
const nudge = 2

// AnimatedTriangle is a Triangle that drifts right and back while the input
// is idle.
type AnimatedTriangle struct {
	Period int
}

func (a AnimatedTriangle) Padding(_ *State, height int) Insets {
	return Insets{Top: 1, Bottom: 1, Left: triangleWidth(height) + nudge + 2, Right: 1}
}

func (a AnimatedTriangle) Shape(state *State, bounds image.Rectangle, fillWidth int) Shape {
	return triangleShape(bounds, fillWidth, a.offset(state.Phase))
}

func (a AnimatedTriangle) OnTargetChanged(state *State) {
	state.Phase = 0
}

func (a AnimatedTriangle) Tick(state *State, input interaction.InputState) {
	if !input.IsIdle() {
		state.Phase = 0
		return
	}
	state.Phase = (state.Phase + 1) % a.period()
}

func (a AnimatedTriangle) period() int {
	if a.Period < 2 {
		return DefaultPeriod
	}
	return a.Period
}

// offset is a triangle wave over the period, 0..nudge..0.
func (a AnimatedTriangle) offset(phase int) int {
	half := a.period() / 2
	if phase > half {
		phase = a.period() - phase
	}
	return phase * nudge / half
}

func triangleWidth(height int) int {
	return max(height/2, 1)
}

func triangleShape(bounds image.Rectangle, fillWidth, shift int) Shape {
	h := bounds.Dy()
	w := triangleWidth(h)
	x := bounds.Min.X + shift
	top := bounds.Min.Y + 1
	bottom := bounds.Max.Y - 2
	return Shape{
		Fill: progressFill(bounds, fillWidth),
		Triangle: [3]image.Point{
			{X: x, Y: top},
			{X: x, Y: bottom},
			{X: x + w - 1, Y: top + (bottom-top)/2},
		},
		HasTriangle: true,
	}
}
