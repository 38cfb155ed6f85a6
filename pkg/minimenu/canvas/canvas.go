// Package canvas defines the drawing surface the menu engine renders into.
//
// The engine never touches pixels directly. Backends (the SDL renderer in
// sdlview, the software rasterizer in raster) implement Canvas, and tests
// use the recording canvas in canvastest.
package canvas

import (
	"image"
	"image/color"
)

// TextMetrics measures strings under the backend's active font.
type TextMetrics interface {
	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string) int
	// LineHeight returns the height of one line of text in pixels.
	LineHeight() int
}

// Canvas is a drawable surface. Every drawing call may fail; failures are
// returned to the caller unchanged.
type Canvas interface {
	TextMetrics

	// Bounds reports the drawable area.
	Bounds() image.Rectangle

	FillRect(r image.Rectangle, c color.Color) error
	StrokeRect(r image.Rectangle, c color.Color) error
	Line(from, to image.Point, c color.Color) error
	FillTriangle(a, b, c image.Point, col color.Color) error

	// Text draws s with its top-left corner at at.
	Text(s string, at image.Point, c color.Color) error

	// DrawImage copies img with its top-left corner at at.
	DrawImage(img image.Image, at image.Point) error

	// Clip returns a view of the canvas that discards drawing outside r.
	// The view shares coordinates with its parent.
	Clip(r image.Rectangle) Canvas
}

// AlignRight returns the x coordinate that right-aligns a run of width w
// against the right edge of r.
func AlignRight(r image.Rectangle, w int) int {
	return r.Max.X - w
}

// CenterY returns the y coordinate that vertically centers a block of height
// h inside r.
func CenterY(r image.Rectangle, h int) int {
	return r.Min.Y + (r.Dy()-h)/2
}
