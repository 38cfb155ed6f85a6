// Package raster draws menus into in-memory images. It backs headless
// rendering (PNG frames, tests) and framebuffer displays without SDL.
//
// Shapes are scan-converted with rasterx, text uses x/image font faces and
// SVG icons are rasterized with oksvg.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
)

// Canvas is a canvas.Canvas over a draw.Image.
type Canvas struct {
	dst  draw.Image
	clip image.Rectangle
	face font.Face
}

// New wraps dst using the 7x13 fixed font.
func New(dst draw.Image) *Canvas {
	return NewWithFace(dst, basicfont.Face7x13)
}

// NewWithFace wraps dst using face for text.
func NewWithFace(dst draw.Image, face font.Face) *Canvas {
	return &Canvas{dst: dst, clip: dst.Bounds(), face: face}
}

// NewImage allocates a w by h RGBA image and a canvas over it.
func NewImage(w, h int) (*Canvas, *image.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return New(img), img
}

func (c *Canvas) Bounds() image.Rectangle { return c.clip }

func (c *Canvas) MeasureText(s string) int {
	return font.MeasureString(c.face, s).Ceil()
}

func (c *Canvas) LineHeight() int {
	return c.face.Metrics().Height.Ceil()
}

func (c *Canvas) Clip(r image.Rectangle) canvas.Canvas {
	return &Canvas{dst: c.dst, clip: r.Intersect(c.clip), face: c.face}
}

// target is the destination seen through the clip rectangle.
func (c *Canvas) target() draw.Image {
	return clipped{Image: c.dst, r: c.clip}
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) error {
	draw.Draw(c.target(), r, image.NewUniform(col), image.Point{}, draw.Over)
	return nil
}

// StrokeRect outlines r with one pixel lines on its innermost pixels.
func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+1, r.Min.X+1, r.Max.Y-1),
		image.Rect(r.Max.X-1, r.Min.Y+1, r.Max.X, r.Max.Y-1),
	}
	for _, e := range edges {
		if err := c.FillRect(e, col); err != nil {
			return err
		}
	}
	return nil
}

// Line draws a one pixel line including both endpoints.
func (c *Canvas) Line(from, to image.Point, col color.Color) error {
	if from.X == to.X || from.Y == to.Y {
		r := image.Rectangle{Min: from, Max: to}.Canon()
		r.Max = r.Max.Add(image.Pt(1, 1))
		return c.FillRect(r, col)
	}

	w, h := c.size()
	stroker := rasterx.NewStroker(w, h, rasterx.NewScannerGV(w, h, c.target(), c.dst.Bounds()))
	stroker.SetStroke(fixed.I(1), fixed.I(4), rasterx.SquareCap, nil, rasterx.FlatGap, rasterx.Miter)
	stroker.SetColor(col)
	stroker.Start(pixelCenter(from))
	stroker.Line(pixelCenter(to))
	stroker.Stop(false)
	stroker.Draw()
	return nil
}

func (c *Canvas) FillTriangle(a, b, p image.Point, col color.Color) error {
	w, h := c.size()
	filler := rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, c.target(), c.dst.Bounds()))
	filler.SetColor(col)
	filler.Start(pixelCenter(a))
	filler.Line(pixelCenter(b))
	filler.Line(pixelCenter(p))
	filler.Stop(true)
	filler.Draw()
	return nil
}

// Text draws s with the top of the line box at at.Y.
func (c *Canvas) Text(s string, at image.Point, col color.Color) error {
	d := font.Drawer{
		Dst:  c.target(),
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(at.X, at.Y+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return nil
}

func (c *Canvas) DrawImage(img image.Image, at image.Point) error {
	b := img.Bounds()
	draw.Draw(c.target(), image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
	return nil
}

func (c *Canvas) size() (int, int) {
	b := c.dst.Bounds()
	return b.Max.X, b.Max.Y
}

func pixelCenter(p image.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X)+0.5, float64(p.Y)+0.5)
}

// clipped narrows an image's bounds so that draw operations discard pixels
// outside r.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.r.Intersect(c.Image.Bounds())
}

func (c clipped) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.r) {
		c.Image.Set(x, y, col)
	}
}
