// Package theme holds the visual configuration of a menu: colors, the
// indicator skin, fonts, animation speeds and the idle timeout. Styles are
// read from and written to TOML.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme defines the colors a menu is drawn with. Binary displays map every
// color to on or off by luminance.
type Theme struct {
	TextColor          color.RGBA // Unselected row text
	SelectedTextColor  color.RGBA // Row text inside the indicator fill
	SelectionFillColor color.RGBA // Indicator fill, outline and triangle
	TitleColor         color.RGBA // Title bar text and separator
	BackgroundColor    color.RGBA // Cleared before each frame
	ScrollbarColor     color.RGBA // Scrollbar thumb
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHex parses "#RRGGBB" (the leading # is optional).
func ParseHex(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return color.RGBA{}, fmt.Errorf("theme: color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("theme: color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}

// FormatHex renders c as "#RRGGBB".
func FormatHex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// DefaultTheme is white text on black with an inverted selection.
func DefaultTheme() Theme {
	return Theme{
		TextColor:          HexToColor(0xFFFFFF),
		SelectedTextColor:  HexToColor(0x000000),
		SelectionFillColor: HexToColor(0xFFFFFF),
		TitleColor:         HexToColor(0xFFFFFF),
		BackgroundColor:    HexToColor(0x000000),
		ScrollbarColor:     HexToColor(0xB4B4B4),
	}
}
