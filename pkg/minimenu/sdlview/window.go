// Package sdlview presents menus in an SDL window. It provides the window
// and renderer setup, a renderer-backed canvas.Canvas with TTF text and
// keyboard translation into interaction.KeyEvent.
package sdlview

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

const (
	devWindowWidth  = 640
	devWindowHeight = 480
)

// Config describes the window to open.
type Config struct {
	Title    string
	Width    int32 // 0 uses the current display mode
	Height   int32
	FontPath string
	FontSize int
	Options  WindowOptions
}

// Window wraps the SDL window, renderer and font a menu is drawn with.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Font     *ttf.Font
	Title    string

	width, height   int32
	hasVSync        bool
	lastPresentTime uint64
	texts           *textureCache[*sdl.Texture]
}

// Open initializes SDL and TTF, creates the window and loads the font.
// In dev mode (ENVIRONMENT=DEV) the window is decorated and sized from
// WINDOW_WIDTH and WINDOW_HEIGHT.
func Open(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, minimenu.NewInfrastructureError("init_sdl", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, minimenu.NewInfrastructureError("init_ttf", err)
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		}
		width, height = mode.W, mode.H
	}

	opts := cfg.Options
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(cfg.Title, x, y, width, height, opts.sdlFlags())
	if err != nil {
		quit()
		return nil, minimenu.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		quit()
		return nil, minimenu.NewInfrastructureError("create_renderer", err)
	}
	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	font, err := ttf.OpenFont(cfg.FontPath, cfg.FontSize)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		quit()
		return nil, minimenu.NewInfrastructureError("load_font", err)
	}

	return &Window{
		Window:   window,
		Renderer: renderer,
		Font:     font,
		Title:    cfg.Title,
		width:    width,
		height:   height,
		hasVSync: vsync,
		texts:    newTextureCache[*sdl.Texture](defaultMaxCacheSize),
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func quit() {
	ttf.Quit()
	sdl.Quit()
}

// Close releases every SDL resource the window holds.
func (w *Window) Close() {
	w.texts.destroy()
	w.Font.Close()
	w.Renderer.Destroy()
	w.Window.Destroy()
	quit()
}

// Size is the logical drawing size.
func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

// Canvas returns a canvas covering the whole window.
func (w *Window) Canvas() *Canvas {
	return &Canvas{win: w, clip: rectFromSize(w.width, w.height)}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < constants.DefaultFrameMillis {
			sdl.Delay(uint32(constants.DefaultFrameMillis - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
