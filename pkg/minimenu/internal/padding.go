package internal

import "image"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Shrink returns r with the padding removed from each side.
func (p Padding) Shrink(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X+p.Left, r.Min.Y+p.Top, r.Max.X-p.Right, r.Max.Y-p.Bottom)
}
