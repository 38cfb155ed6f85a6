package theme

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/indicator"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/internal"
)

// ScrollbarMode controls when the scrollbar is drawn.
type ScrollbarMode int

const (
	ScrollbarAuto ScrollbarMode = iota // Only when the rows overflow the list area
	ScrollbarAlways
	ScrollbarNever
)

func (m ScrollbarMode) String() string {
	switch m {
	case ScrollbarAlways:
		return "always"
	case ScrollbarNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseScrollbarMode maps a config name to a mode. Unknown names are auto.
func ParseScrollbarMode(name string) ScrollbarMode {
	switch name {
	case "always":
		return ScrollbarAlways
	case "never":
		return ScrollbarNever
	default:
		return ScrollbarAuto
	}
}

// Style is the complete visual configuration of a menu.
type Style struct {
	Theme           Theme
	Indicator       string // line, border, triangle, animated_triangle, rectangle
	FontPath        string // TTF used by the SDL backend
	FontSize        int
	ScrollFrames    int    // Ticks for the list to scroll one row
	IndicatorFrames int    // Ticks for the indicator to travel one row
	IdleTimeout     uint16 // Idle ticks before the details view; 0 disables it
	TitleAlign      constants.TextAlign
	Scrollbar       ScrollbarMode
	PageSize        int
}

// Default returns the built-in style.
func Default() Style {
	return Style{
		Theme:           DefaultTheme(),
		Indicator:       "line",
		FontSize:        13,
		ScrollFrames:    constants.DefaultScrollFrames,
		IndicatorFrames: constants.DefaultIndicatorFrames,
		TitleAlign:      constants.TextAlignLeft,
		Scrollbar:       ScrollbarAuto,
		PageSize:        constants.DefaultPageSize,
	}
}

// IndicatorStyle resolves the configured indicator skin.
func (s Style) IndicatorStyle() (indicator.Style, error) {
	return indicator.ByName(s.Indicator)
}

type colorsFile struct {
	Text          string `toml:"text"`
	SelectedText  string `toml:"selected_text"`
	SelectionFill string `toml:"selection_fill"`
	Title         string `toml:"title"`
	Background    string `toml:"background"`
	Scrollbar     string `toml:"scrollbar"`
}

type fontFile struct {
	Path string `toml:"path,omitempty"`
	Size int    `toml:"size"`
}

type animationFile struct {
	ScrollFrames    int `toml:"scroll_frames"`
	IndicatorFrames int `toml:"indicator_frames"`
}

type styleFile struct {
	Indicator   string        `toml:"indicator"`
	IdleTimeout uint16        `toml:"idle_timeout"`
	TitleAlign  string        `toml:"title_align"`
	Scrollbar   string        `toml:"scrollbar"`
	PageSize    int           `toml:"page_size"`
	Colors      colorsFile    `toml:"colors"`
	Font        fontFile      `toml:"font"`
	Animation   animationFile `toml:"animation"`
}

func (s Style) toFile() styleFile {
	return styleFile{
		Indicator:   s.Indicator,
		IdleTimeout: s.IdleTimeout,
		TitleAlign:  s.TitleAlign.String(),
		Scrollbar:   s.Scrollbar.String(),
		PageSize:    s.PageSize,
		Colors: colorsFile{
			Text:          FormatHex(s.Theme.TextColor),
			SelectedText:  FormatHex(s.Theme.SelectedTextColor),
			SelectionFill: FormatHex(s.Theme.SelectionFillColor),
			Title:         FormatHex(s.Theme.TitleColor),
			Background:    FormatHex(s.Theme.BackgroundColor),
			Scrollbar:     FormatHex(s.Theme.ScrollbarColor),
		},
		Font: fontFile{Path: s.FontPath, Size: s.FontSize},
		Animation: animationFile{
			ScrollFrames:    s.ScrollFrames,
			IndicatorFrames: s.IndicatorFrames,
		},
	}
}

func (f styleFile) toStyle() (Style, error) {
	var errs []error
	parse := func(name, raw string) color.RGBA {
		c, err := ParseHex(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
		return c
	}

	s := Style{
		Theme: Theme{
			TextColor:          parse("text", f.Colors.Text),
			SelectedTextColor:  parse("selected_text", f.Colors.SelectedText),
			SelectionFillColor: parse("selection_fill", f.Colors.SelectionFill),
			TitleColor:         parse("title", f.Colors.Title),
			BackgroundColor:    parse("background", f.Colors.Background),
			ScrollbarColor:     parse("scrollbar", f.Colors.Scrollbar),
		},
		Indicator:       f.Indicator,
		FontPath:        f.Font.Path,
		FontSize:        f.Font.Size,
		ScrollFrames:    f.Animation.ScrollFrames,
		IndicatorFrames: f.Animation.IndicatorFrames,
		IdleTimeout:     f.IdleTimeout,
		TitleAlign:      constants.ParseTextAlign(f.TitleAlign),
		Scrollbar:       ParseScrollbarMode(f.Scrollbar),
		PageSize:        f.PageSize,
	}

	if _, err := s.IndicatorStyle(); err != nil {
		errs = append(errs, err)
	}
	return s, errors.Join(errs...)
}

// Parse reads a TOML style. Keys missing from data keep their defaults.
func Parse(data []byte) (Style, error) {
	f := Default().toFile()
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return Style{}, fmt.Errorf("theme: %w", err)
	}
	for _, key := range meta.Undecoded() {
		internal.GetInternalLogger().Warn("Ignoring unknown style key", "key", key.String())
	}
	return f.toStyle()
}

// Load reads a TOML style file.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Encode writes the style as TOML.
func (s Style) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s.toFile())
}

// String renders the style as TOML.
func (s Style) String() string {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}
