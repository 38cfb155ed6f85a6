package main

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/evdev"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/sdlview"
)

// Run command flags
var (
	windowWidth  int32
	windowHeight int32
	fontPath     string
	evdevPath    string
	evdevCode    string
	ignoreTicks  uint32
	holdTicks    uint32
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo menu in a window",
	Long: `Open the demo settings menu in an SDL window.

By default the keyboard drives the menu: arrows move and repeat while held,
Enter or Space selects, Page Up and Page Down jump a page. With --evdev a
single hardware button drives it instead: a short press moves to the next
entry and holding the button selects.`,
	Example: `  # Keyboard in a 320x240 window
  ENVIRONMENT=DEV WINDOW_WIDTH=320 WINDOW_HEIGHT=240 minimenu run --font font.ttf

  # One button on an input device
  minimenu run --font font.ttf --evdev /dev/input/event0 --code KEY_ENTER`,
	RunE: runWindow,
}

func init() {
	runCmd.Flags().Int32Var(&windowWidth, "width", 0, "Window width (0 uses the display)")
	runCmd.Flags().Int32Var(&windowHeight, "height", 0, "Window height (0 uses the display)")
	runCmd.Flags().StringVar(&fontPath, "font", "", "TTF font; overrides the style's font path")
	runCmd.Flags().StringVar(&evdevPath, "evdev", "", "Input device for single-button control")
	runCmd.Flags().StringVar(&evdevCode, "code", "KEY_ENTER", "Key code of the button on --evdev")
	runCmd.Flags().Uint32Var(&ignoreTicks, "ignore", 2, "Presses this many ticks or shorter are ignored")
	runCmd.Flags().Uint32Var(&holdTicks, "hold", 30, "Ticks to hold the button to select")
	rootCmd.AddCommand(runCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	style, err := loadStyle()
	if err != nil {
		return err
	}
	settings, err := loadSettings(style)
	if err != nil {
		return err
	}
	if fontPath != "" {
		style.FontPath = fontPath
	}

	win, err := sdlview.Open(sdlview.Config{
		Title:    "minimenu",
		Width:    windowWidth,
		Height:   windowHeight,
		FontPath: style.FontPath,
		FontSize: style.FontSize,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	keys := sdlview.DefaultKeyMap()
	entries := demoItems(iconSizeFor(win.Canvas().LineHeight()))

	if evdevPath == "" {
		menu, err := minimenu.New[interaction.KeyEvent, demoEvent](demoTitle, entries, interaction.NewKeys(style.PageSize), settings)
		if err != nil {
			return err
		}
		repeat := interaction.NewRepeater(0, 0)
		return loop(win, menu, func() ([]interaction.KeyEvent, bool) {
			events, quit := keys.Poll()
			events = repeat.Filter(events)
			if ev, ok := repeat.Tick(); ok {
				events = append(events, ev)
			}
			return events, quit
		})
	}

	code, err := evdev.ParseCode(evdevCode)
	if err != nil {
		return err
	}
	adapter, err := interaction.NewSingleTouch(ignoreTicks, holdTicks)
	if err != nil {
		return err
	}
	button, err := evdev.Open(evdevPath, code)
	if err != nil {
		return err
	}
	defer button.Close()

	menu, err := minimenu.New[bool, demoEvent](demoTitle, entries, adapter, settings)
	if err != nil {
		return err
	}
	return loop(win, menu, func() ([]bool, bool) {
		_, quit := keys.Poll()
		if err := button.Err(); err != nil {
			minimenu.GetLogger().Error("Input device failed", "path", evdevPath, "error", err)
			return nil, true
		}
		return []bool{button.Pressed()}, quit
	})
}

// loop runs the menu at the window's frame rate until the window closes or
// Quit is selected. poll returns the input samples gathered since the last
// frame.
func loop[I any](win *sdlview.Window, menu *minimenu.Menu[I, demoEvent], poll func() ([]I, bool)) error {
	c := win.Canvas()
	for {
		samples, quit := poll()
		if quit {
			return nil
		}
		for _, sample := range samples {
			if event, ok := menu.Interact(sample); ok && handle(event) {
				return nil
			}
		}

		menu.Update(c.Bounds(), c)
		if err := menu.Draw(c); err != nil {
			return err
		}
		win.Present()
	}
}
