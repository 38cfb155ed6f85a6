package main

import (
	"bytes"
	_ "embed"
	"strconv"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/items"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/raster"
)

//go:embed assets/info.svg
var infoIcon []byte

const demoTitle = "Settings"

// demoEvent is what the demo menu's entries report when selected.
type demoEvent struct {
	Setting string
	Value   string
	Quit    bool
}

// demoItems builds the demo settings menu. iconSize is the edge of the
// About entry's icon; 0 leaves it out.
func demoItems(iconSize int) items.Collection[demoEvent] {
	about := items.NewNavigation("About", demoEvent{Setting: "about"}).
		WithDetails("A selection list engine for small pixel displays. Hold a button to select.")
	if iconSize > 0 {
		if icon, err := raster.RasterizeSVG(bytes.NewReader(infoIcon), iconSize, iconSize); err == nil {
			about.WithIcon(icon)
		} else {
			minimenu.GetLogger().Warn("Could not rasterize icon", "error", err)
		}
	}

	return items.List[demoEvent](
		items.Single[demoEvent](items.NewSection[demoEvent]("Display")),
		items.Single[demoEvent](items.NewSelect("Brightness", items.NewEnum("medium", "low", "medium", "high"),
			func(e items.Enum) demoEvent {
				return demoEvent{Setting: "brightness", Value: e.Selected()}
			}).WithDetails("Backlight level of the display.")),
		items.Single[demoEvent](items.NewSelect("Sound", items.Bool(true),
			func(b items.Bool) demoEvent {
				return demoEvent{Setting: "sound", Value: strconv.FormatBool(bool(b))}
			}).WithDetails("Play a click on every key press.")),
		items.Single[demoEvent](items.NewSelect("Scrolling", items.NewEnum("smooth", "smooth", "instant"),
			func(e items.Enum) demoEvent {
				return demoEvent{Setting: "scrolling", Value: e.Selected()}
			})),
		items.Single[demoEvent](items.NewSection[demoEvent]("System")),
		items.Single[demoEvent](about),
		items.Single[demoEvent](items.NewNavigation("Quit", demoEvent{Quit: true}).
			WithDetails("Return to the previous screen.")),
	)
}

// handle logs an event and reports whether the demo should stop.
func handle(event demoEvent) bool {
	if event.Quit {
		minimenu.GetLogger().Info("Quit selected")
		return true
	}
	minimenu.GetLogger().Info("Setting changed", "setting", event.Setting, "value", event.Value)
	return false
}

// iconSizeFor fits icons to a line of text.
func iconSizeFor(lineHeight int) int {
	return max(lineHeight-4, 0)
}
