package indicator

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/animation"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
)

// Indicator tracks the selected row's vertical offset and draws the style
// there.
type Indicator struct {
	style  Style
	state  State
	offset animation.Value
	frames int
	placed bool
}

// New creates an indicator that travels one row in frames ticks.
func New(style Style, frames int) *Indicator {
	if style == nil {
		style = Line{}
	}
	return &Indicator{style: style, frames: frames, offset: animation.New(0, 1)}
}

func (i *Indicator) Style() Style { return i.style }

// Relayout recomputes the travel speed for a new row height.
func (i *Indicator) Relayout(rowHeight int) {
	i.offset = animation.Restore(i.offset.Current(), i.offset.Target(), animation.StepFor(rowHeight, i.frames))
}

// SetTarget moves the destination to y. The first target is jumped to
// directly so a fresh menu does not animate in from the top.
func (i *Indicator) SetTarget(y int) {
	if !i.placed {
		i.placed = true
		i.offset.Jump(y)
		return
	}
	if y == i.offset.Target() {
		return
	}
	i.style.OnTargetChanged(&i.state)
	i.offset.SetTarget(y)
}

// Update advances the offset and the style's animation by one tick.
func (i *Indicator) Update(input interaction.InputState) {
	i.offset.Update()
	i.style.Tick(&i.state, input)
}

// Offset is the current vertical position in list coordinates.
func (i *Indicator) Offset() int { return i.offset.Current() }

// Target is the position the indicator is moving to.
func (i *Indicator) Target() int { return i.offset.Target() }

func (i *Indicator) Padding(height int) Insets {
	return i.style.Padding(&i.state, height)
}

// FillWidth maps hold progress onto [0, width].
func FillWidth(input interaction.InputState, width int) int {
	if input.Kind != interaction.InputInProgress {
		return 0
	}
	return animation.Interpolate(int(input.Progress), 0, 255, 0, width)
}

// Shape returns the style's shape for bounds under the given input.
func (i *Indicator) Shape(bounds image.Rectangle, input interaction.InputState) Shape {
	return i.style.Shape(&i.state, bounds, FillWidth(input, bounds.Dx()))
}

// Draw renders the indicator at bounds and then calls content with a canvas
// clipped to the shape's fill, so selected content can be drawn inverted.
func (i *Indicator) Draw(c canvas.Canvas, bounds image.Rectangle, input interaction.InputState, fill color.Color, content func(canvas.Canvas) error) error {
	shape := i.Shape(bounds, input)
	if err := shape.Draw(c, fill); err != nil {
		return err
	}
	if shape.Fill.Empty() || content == nil {
		return nil
	}
	return content(c.Clip(shape.Fill))
}

// Snapshot is the restorable part of an indicator.
type Snapshot struct {
	State   State
	Current int
	Target  int
}

func (i *Indicator) Snapshot() Snapshot {
	return Snapshot{State: i.state, Current: i.offset.Current(), Target: i.offset.Target()}
}

// Restore resumes from a snapshot taken by Snapshot.
func (i *Indicator) Restore(s Snapshot) {
	i.state = s.State
	i.offset = animation.Restore(s.Current, s.Target, i.offset.Step())
	i.placed = true
}
