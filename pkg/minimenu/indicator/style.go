// Package indicator draws the highlight that tracks the selected row.
//
// A Style is a stateless policy that turns the row bounds and a fill width
// into a Shape. Per-style animation lives in State, which the Indicator
// advances once per tick.
package indicator

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// ErrUnknownStyle is returned by ByName for names it does not know.
var ErrUnknownStyle = errors.New("indicator: unknown style")

// Insets is the space a style reserves around row content.
type Insets = internal.Padding

// State is the per-style animation state. The zero value is the reset state.
type State struct {
	Phase int
}

// Shape is the geometry a style produces for one frame.
type Shape struct {
	// Fill is filled with the selection color. Selected content is redrawn
	// in the selected-text color inside it.
	Fill image.Rectangle
	// Outline is stroked with the selection color when not empty.
	Outline image.Rectangle
	// Triangle is filled with the selection color when HasTriangle is set.
	Triangle    [3]image.Point
	HasTriangle bool
}

// Draw renders the shape in col.
func (s Shape) Draw(c canvas.Canvas, col color.Color) error {
	if !s.Outline.Empty() {
		if err := c.StrokeRect(s.Outline, col); err != nil {
			return err
		}
	}
	if s.HasTriangle {
		if err := c.FillTriangle(s.Triangle[0], s.Triangle[1], s.Triangle[2], col); err != nil {
			return err
		}
	}
	if !s.Fill.Empty() {
		if err := c.FillRect(s.Fill, col); err != nil {
			return err
		}
	}
	return nil
}

// Style is a selection indicator skin.
type Style interface {
	// Padding is the inset row content needs so it clears the indicator.
	Padding(state *State, height int) Insets
	// Shape computes the indicator for bounds with fillWidth pixels of
	// hold progress.
	Shape(state *State, bounds image.Rectangle, fillWidth int) Shape
	// OnTargetChanged is called when the selection moves.
	OnTargetChanged(state *State)
	// Tick advances per-style animation by one tick.
	Tick(state *State, input interaction.InputState)
}

// ByName resolves a configured style name.
func ByName(name string) (Style, error) {
	switch name {
	case "line", "":
		return Line{}, nil
	case "border":
		return Border{}, nil
	case "triangle":
		return Triangle{}, nil
	case "animated_triangle":
		return AnimatedTriangle{Period: DefaultPeriod}, nil
	case "rectangle":
		return Rectangle{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// progressFill is the left-anchored fill rectangle shared by most styles.
func progressFill(bounds image.Rectangle, width int) image.Rectangle {
	if width <= 0 {
		return image.Rectangle{}
	}
	if width > bounds.Dx() {
		width = bounds.Dx()
	}
	return image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+width, bounds.Max.Y)
}
