package sdlview

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// KeyMap assigns keyboard keys to virtual buttons.
type KeyMap map[sdl.Keycode]constants.VirtualButton

// DefaultKeyMap mirrors a handheld's layout on a desktop keyboard.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_a:         constants.VirtualButtonA,
		sdl.K_SPACE:     constants.VirtualButtonA,
		sdl.K_b:         constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_PAGEUP:    constants.VirtualButtonL1,
		sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
		sdl.K_RETURN:    constants.VirtualButtonStart,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_ESCAPE:    constants.VirtualButtonMenu,
	}
}

// Translate converts a keyboard event into a KeyEvent. Unmapped keys report
// false.
func (m KeyMap) Translate(e *sdl.KeyboardEvent) (interaction.KeyEvent, bool) {
	button, ok := m[e.Keysym.Sym]
	if !ok {
		return interaction.KeyEvent{}, false
	}
	return interaction.KeyEvent{
		Button: button,
		Down:   e.Type == sdl.KEYDOWN,
		Repeat: e.Repeat != 0,
	}, true
}

// Poll drains the SDL event queue. It returns the translated key events in
// order and whether the window was asked to close.
func (m KeyMap) Poll() ([]interaction.KeyEvent, bool) {
	var keys []interaction.KeyEvent
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if key, ok := m.Translate(e); ok {
				if !key.Repeat {
					internal.GetInternalLogger().Debug("Key event",
						"button", key.Button.String(),
						"down", key.Down)
				}
				keys = append(keys, key)
			}
		}
	}
	return keys, quit
}
