// Package mono provides a style for 1-bit displays such as 128x64 OLED
// panels, where every pixel is either lit or dark.
package mono

import (
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

var (
	On  = theme.HexToColor(0xFFFFFF)
	Off = theme.HexToColor(0x000000)
)

// Style returns a lit-on-dark style with an animated triangle indicator and
// a details view after roughly five seconds of inactivity at 60 ticks per
// second.
func Style() theme.Style {
	s := theme.Default()
	s.Theme = theme.Theme{
		TextColor:          On,
		SelectedTextColor:  Off,
		SelectionFillColor: On,
		TitleColor:         On,
		BackgroundColor:    Off,
		ScrollbarColor:     On,
	}
	s.Indicator = "animated_triangle"
	s.IdleTimeout = 300
	s.FontSize = 8
	return s
}
