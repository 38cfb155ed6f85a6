// Package cannoli provides the menu style for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

// Style returns Cannoli's default colors with a bordered indicator and the
// given font.
func Style(fontPath string) theme.Style {
	s := theme.Default()
	s.Theme = theme.Theme{
		TextColor:          theme.HexToColor(0xFFFFFF),
		SelectedTextColor:  theme.HexToColor(0x000000),
		SelectionFillColor: theme.HexToColor(0x008080),
		TitleColor:         theme.HexToColor(0x008080),
		BackgroundColor:    theme.HexToColor(0x000000),
		ScrollbarColor:     theme.HexToColor(0x008080),
	}
	s.Indicator = "border"
	s.FontPath = fontPath
	s.FontSize = 20
	s.TitleAlign = constants.TextAlignCenter
	return s
}
