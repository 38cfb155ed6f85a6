// Package canvastest provides a recording canvas.Canvas for tests.
package canvastest

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "fill", "stroke", "line", "triangle", "text", "image"
	Rect  image.Rectangle
	Text  string
	At    image.Point
	Color color.Color
	Clip  image.Rectangle
}

// Recorder records drawing calls. Text is measured as CharWidth pixels per
// rune and LineH pixels per line.
type Recorder struct {
	Size      image.Point
	CharWidth int
	LineH     int
	Ops       []Op
	// Fail, when set, is returned by every drawing call after recording it.
	Fail error
}

// New returns a recorder of the given size with 6x8 monospace metrics.
func New(w, h int) *Recorder {
	return &Recorder{Size: image.Pt(w, h), CharWidth: 6, LineH: 8}
}

func (r *Recorder) MeasureText(s string) int { return utf8.RuneCountInString(s) * r.CharWidth }
func (r *Recorder) LineHeight() int          { return r.LineH }

func (r *Recorder) Bounds() image.Rectangle {
	return image.Rectangle{Max: r.Size}
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.Color) error {
	return r.record(Op{Kind: "fill", Rect: rect, Color: c}, r.Bounds())
}

func (r *Recorder) StrokeRect(rect image.Rectangle, c color.Color) error {
	return r.record(Op{Kind: "stroke", Rect: rect, Color: c}, r.Bounds())
}

func (r *Recorder) Line(from, to image.Point, c color.Color) error {
	return r.record(Op{Kind: "line", Rect: image.Rectangle{Min: from, Max: to}, Color: c}, r.Bounds())
}

func (r *Recorder) FillTriangle(a, b, c image.Point, col color.Color) error {
	return r.record(Op{Kind: "triangle", Rect: triangleBounds(a, b, c), Color: col}, r.Bounds())
}

func (r *Recorder) Text(s string, at image.Point, c color.Color) error {
	return r.record(Op{Kind: "text", Text: s, At: at, Color: c}, r.Bounds())
}

func (r *Recorder) DrawImage(img image.Image, at image.Point) error {
	return r.record(Op{Kind: "image", Rect: img.Bounds().Sub(img.Bounds().Min).Add(at), At: at}, r.Bounds())
}

func (r *Recorder) Clip(rect image.Rectangle) canvas.Canvas {
	return &clipped{parent: r, clip: rect.Intersect(r.Bounds())}
}

func (r *Recorder) record(op Op, clip image.Rectangle) error {
	op.Clip = clip
	r.Ops = append(r.Ops, op)
	return r.Fail
}

// Texts returns the recorded text runs in order.
func (r *Recorder) Texts() []Op {
	return r.filter("text")
}

// Kind returns the recorded ops of one kind in order.
func (r *Recorder) Kind(kind string) []Op {
	return r.filter(kind)
}

func (r *Recorder) filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

type clipped struct {
	parent *Recorder
	clip   image.Rectangle
}

func (c *clipped) MeasureText(s string) int { return c.parent.MeasureText(s) }
func (c *clipped) LineHeight() int          { return c.parent.LineHeight() }
func (c *clipped) Bounds() image.Rectangle  { return c.clip }

func (c *clipped) FillRect(rect image.Rectangle, col color.Color) error {
	return c.parent.record(Op{Kind: "fill", Rect: rect, Color: col}, c.clip)
}

func (c *clipped) StrokeRect(rect image.Rectangle, col color.Color) error {
	return c.parent.record(Op{Kind: "stroke", Rect: rect, Color: col}, c.clip)
}

func (c *clipped) Line(from, to image.Point, col color.Color) error {
	return c.parent.record(Op{Kind: "line", Rect: image.Rectangle{Min: from, Max: to}, Color: col}, c.clip)
}

func (c *clipped) FillTriangle(a, b, p image.Point, col color.Color) error {
	return c.parent.record(Op{Kind: "triangle", Rect: triangleBounds(a, b, p), Color: col}, c.clip)
}

func (c *clipped) Text(s string, at image.Point, col color.Color) error {
	return c.parent.record(Op{Kind: "text", Text: s, At: at, Color: col}, c.clip)
}

func (c *clipped) DrawImage(img image.Image, at image.Point) error {
	return c.parent.record(Op{Kind: "image", Rect: img.Bounds().Sub(img.Bounds().Min).Add(at), At: at}, c.clip)
}

func (c *clipped) Clip(rect image.Rectangle) canvas.Canvas {
	return &clipped{parent: c.parent, clip: rect.Intersect(c.clip)}
}

// triangleBounds returns the inclusive bounding box of three points.
func triangleBounds(a, b, c image.Point) image.Rectangle {
	r := image.Rectangle{Min: a, Max: a}
	for _, p := range []image.Point{b, c} {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
