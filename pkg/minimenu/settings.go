package minimenu

import (
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/constants"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/indicator"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

// Localizer translates user-visible strings. A string with no translation
// is returned unchanged.
type Localizer interface {
	Translate(s string) string
}

// Settings configures a Menu. Start from DefaultSettings or
// SettingsFromStyle and override fields as needed.
type Settings struct {
	Theme           theme.Theme
	Indicator       indicator.Style // nil means indicator.Line
	ScrollFrames    int             // Ticks for the list to scroll one row
	IndicatorFrames int             // Ticks for the indicator to travel one row
	IdleTimeout     uint16          // Idle ticks before the details view; 0 disables it
	TitleAlign      constants.TextAlign
	TitleSpacing    int
	Scrollbar       theme.ScrollbarMode
	ScrollbarWidth  int
	Localizer       Localizer // Optional
	Selected        int       // Initial selection, clamped to the item count
	Resume          *Snapshot // Restores a previous session; overrides Selected
}

// DefaultSettings returns settings for the default theme with a line
// indicator and no idle timeout.
func DefaultSettings() Settings {
	return Settings{
		Theme:           theme.DefaultTheme(),
		Indicator:       indicator.Line{},
		ScrollFrames:    constants.DefaultScrollFrames,
		IndicatorFrames: constants.DefaultIndicatorFrames,
		TitleAlign:      constants.TextAlignLeft,
		TitleSpacing:    constants.DefaultTitleSpacing,
		Scrollbar:       theme.ScrollbarAuto,
		ScrollbarWidth:  constants.DefaultScrollbarWidth,
	}
}

// SettingsFromStyle resolves a loaded style into menu settings.
func SettingsFromStyle(style theme.Style) (Settings, error) {
	skin, err := style.IndicatorStyle()
	if err != nil {
		return Settings{}, err
	}

	s := DefaultSettings()
	s.Theme = style.Theme
	s.Indicator = skin
	s.ScrollFrames = style.ScrollFrames
	s.IndicatorFrames = style.IndicatorFrames
	s.IdleTimeout = style.IdleTimeout
	s.TitleAlign = style.TitleAlign
	s.Scrollbar = style.Scrollbar
	return s, nil
}

func (s Settings) translate(text string) string {
	if s.Localizer == nil || text == "" {
		return text
	}
	return s.Localizer.Translate(text)
}
