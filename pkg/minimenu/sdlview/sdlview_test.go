package sdlview

import (
	"image"
	"image/color"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
)

func TestTranslateKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name  string
		event sdl.KeyboardEvent
		want  interaction.KeyEvent
		ok    bool
	}{
		{
			name:  "down arrow pressed",
			event: sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}},
			want:  interaction.KeyEvent{Button: constants.VirtualButtonDown, Down: true},
			ok:    true,
		},
		{
			name:  "return released",
			event: sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_RETURN}},
			want:  interaction.KeyEvent{Button: constants.VirtualButtonStart},
			ok:    true,
		},
		{
			name:  "held space repeats",
			event: sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}},
			want:  interaction.KeyEvent{Button: constants.VirtualButtonA, Down: true, Repeat: true},
			ok:    true,
		},
		{
			name:  "unmapped",
			event: sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F12}},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Translate(&tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Translate() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	if got := toSDLRect(image.Rect(10, 20, 4, 5)); got != (sdl.Rect{X: 4, Y: 5, W: 6, H: 15}) {
		t.Errorf("toSDLRect() = %+v", got)
	}
	if got := toSDLColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128}); got != (sdl.Color{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("toSDLColor() = %+v", got)
	}
	if got := toSDLFPoint(image.Pt(3, 7)); got != (sdl.FPoint{X: 3, Y: 7}) {
		t.Errorf("toSDLFPoint() = %+v", got)
	}
}

func TestWindowFlags(t *testing.T) {
	if got := (WindowOptions{}).sdlFlags(); got != sdl.WINDOW_SHOWN {
		t.Errorf("default flags = %#x", got)
	}
	got := WindowOptions{Hidden: true, Borderless: true, Fullscreen: true}.sdlFlags()
	if got&sdl.WINDOW_SHOWN != 0 {
		t.Error("hidden window has WINDOW_SHOWN")
	}
	if got&sdl.WINDOW_BORDERLESS == 0 || got&sdl.WINDOW_FULLSCREEN_DESKTOP == 0 {
		t.Errorf("flags = %#x", got)
	}
}

type fakeTexture struct {
	destroyed *[]string
	name      string
}

func (f fakeTexture) Destroy() error {
	*f.destroyed = append(*f.destroyed, f.name)
	return nil
}

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var destroyed []string
	cache := newTextureCache[fakeTexture](2)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	key := func(s string) textKey { return textKey{text: s, color: white} }

	cache.set(key("a"), fakeTexture{&destroyed, "a"})
	cache.set(key("b"), fakeTexture{&destroyed, "b"})
	if _, ok := cache.get(key("a")); !ok {
		t.Fatal("a missing")
	}
	cache.set(key("c"), fakeTexture{&destroyed, "c"})

	if _, ok := cache.get(key("b")); ok {
		t.Error("b should have been evicted")
	}
	if len(destroyed) != 1 || destroyed[0] != "b" {
		t.Errorf("destroyed = %v", destroyed)
	}
	if cache.len() != 2 {
		t.Errorf("len() = %d", cache.len())
	}

	// Same text in another color is a separate entry.
	if _, ok := cache.get(textKey{text: "a", color: color.RGBA{A: 255}}); ok {
		t.Error("color is not part of the key")
	}

	cache.destroy()
	if cache.len() != 0 || len(destroyed) != 3 {
		t.Errorf("after destroy len = %d destroyed = %v", cache.len(), destroyed)
	}
}

func TestEnvDimension(t *testing.T) {
	t.Setenv("MINIMENU_TEST_DIM", "320")
	if got := envDimension("MINIMENU_TEST_DIM", 10); got != 320 {
		t.Errorf("envDimension() = %d", got)
	}
	t.Setenv("MINIMENU_TEST_DIM", "wide")
	if got := envDimension("MINIMENU_TEST_DIM", 10); got != 10 {
		t.Errorf("envDimension() = %d for a bad value", got)
	}
	if got := envDimension("MINIMENU_TEST_UNSET", 42); got != 42 {
		t.Errorf("envDimension() = %d for an unset variable", got)
	}
}
