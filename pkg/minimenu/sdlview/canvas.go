package sdlview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/canvas"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// Canvas draws through the window's renderer. Every call sets the
// renderer's clip rectangle to the canvas bounds first.
type Canvas struct {
	win  *Window
	clip image.Rectangle
}

func (c *Canvas) Bounds() image.Rectangle { return c.clip }

func (c *Canvas) MeasureText(s string) int {
	if s == "" {
		return 0
	}
	w, _, err := c.win.Font.SizeUTF8(s)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to measure text", "text", s, "error", err)
		return 0
	}
	return w
}

func (c *Canvas) LineHeight() int {
	return c.win.Font.Height()
}

func (c *Canvas) Clip(r image.Rectangle) canvas.Canvas {
	return &Canvas{win: c.win, clip: r.Intersect(c.clip)}
}

func (c *Canvas) prepare(col color.Color) error {
	clip := toSDLRect(c.clip)
	if err := c.win.Renderer.SetClipRect(&clip); err != nil {
		return err
	}
	sc := toSDLColor(col)
	return c.win.Renderer.SetDrawColor(sc.R, sc.G, sc.B, sc.A)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) error {
	if err := c.prepare(col); err != nil {
		return err
	}
	rect := toSDLRect(r)
	return c.win.Renderer.FillRect(&rect)
}

func (c *Canvas) StrokeRect(r image.Rectangle, col color.Color) error {
	if err := c.prepare(col); err != nil {
		return err
	}
	rect := toSDLRect(r)
	return c.win.Renderer.DrawRect(&rect)
}

func (c *Canvas) Line(from, to image.Point, col color.Color) error {
	if err := c.prepare(col); err != nil {
		return err
	}
	return c.win.Renderer.DrawLine(int32(from.X), int32(from.Y), int32(to.X), int32(to.Y))
}

func (c *Canvas) FillTriangle(a, b, p image.Point, col color.Color) error {
	if err := c.prepare(col); err != nil {
		return err
	}
	sc := toSDLColor(col)
	vertices := []sdl.Vertex{
		{Position: toSDLFPoint(a), Color: sc},
		{Position: toSDLFPoint(b), Color: sc},
		{Position: toSDLFPoint(p), Color: sc},
	}
	return c.win.Renderer.RenderGeometry(nil, vertices, nil)
}

func (c *Canvas) Text(s string, at image.Point, col color.Color) error {
	if s == "" {
		return nil
	}
	if err := c.prepare(col); err != nil {
		return err
	}

	texture, err := c.textTexture(s, col)
	if err != nil {
		return err
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return err
	}
	return c.win.Renderer.Copy(texture, nil, &sdl.Rect{X: int32(at.X), Y: int32(at.Y), W: w, H: h})
}

func (c *Canvas) textTexture(s string, col color.Color) (*sdl.Texture, error) {
	key := textKey{text: s, color: color.RGBAModel.Convert(col).(color.RGBA)}
	if texture, ok := c.win.texts.get(key); ok {
		return texture, nil
	}

	surface, err := c.win.Font.RenderUTF8Blended(s, toSDLColor(col))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := c.win.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	c.win.texts.set(key, texture)
	return texture, nil
}

// DrawImage uploads img as a texture for this call only.
func (c *Canvas) DrawImage(img image.Image, at image.Point) error {
	if err := c.prepare(color.Transparent); err != nil {
		return err
	}

	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(b.Dx()), int32(b.Dy()), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return err
	}
	defer surface.Free()

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+b.Dx()*4], nrgba.Pix[y*nrgba.Stride:])
	}

	texture, err := c.win.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	dst := sdl.Rect{X: int32(at.X), Y: int32(at.Y), W: int32(b.Dx()), H: int32(b.Dy())}
	return c.win.Renderer.Copy(texture, nil, &dst)
}

func toSDLRect(r image.Rectangle) sdl.Rect {
	r = r.Canon()
	return sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

func toSDLFPoint(p image.Point) sdl.FPoint {
	return sdl.FPoint{X: float32(p.X), Y: float32(p.Y)}
}

func toSDLColor(c color.Color) sdl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return sdl.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func rectFromSize(w, h int32) image.Rectangle {
	return image.Rect(0, 0, int(w), int(h))
}
