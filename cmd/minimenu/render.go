package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/interaction"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/raster"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/script"
)

// Render command flags
var (
	outputDir  string
	everyFrame int
)

var renderCmd = &cobra.Command{
	Use:   "render <script.yaml>",
	Short: "Replay an input script and write PNG frames",
	Long: `Replay a YAML input script through the demo menu without a display.

Each step in the script is one action (next, previous, forward, select, ...)
or a number of idle ticks. Frames are written for every step marked
'capture: true', plus every --every ticks when set.`,
	Example: `  # Write captured frames to ./frames
  minimenu render demo.yaml

  # Write every tick with the mono preset
  minimenu theme --preset mono > mono.toml
  minimenu render demo.yaml --style mono.toml --every 1 --out /tmp/frames`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&outputDir, "out", "o", "frames", "Directory for PNG frames")
	renderCmd.Flags().IntVar(&everyFrame, "every", 0, "Also write a frame every N ticks (0 disables)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}
	style, err := loadStyle()
	if err != nil {
		return err
	}
	settings, err := loadSettings(style)
	if err != nil {
		return err
	}

	written, err := renderScript(sc, settings, outputDir, everyFrame)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frame(s) to %s\n", written, outputDir)
	return nil
}

// renderScript plays sc against the demo menu on a software canvas and
// returns the number of frames written to dir.
func renderScript(sc *script.Script, settings minimenu.Settings, dir string, every int) (int, error) {
	c, img := raster.NewImage(sc.Width, sc.Height)
	menu, err := minimenu.New[interaction.Action, demoEvent](demoTitle, demoItems(iconSizeFor(c.LineHeight())), interaction.Programmed{}, settings)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, minimenu.NewInfrastructureError("create_output_dir", err)
	}

	written := 0
	for i, tick := range sc.Ticks() {
		event, ok := menu.Interact(tick.Action)
		quit := ok && handle(event)

		menu.Update(c.Bounds(), c)
		if !tick.Capture && (every <= 0 || i%every != 0) && !quit {
			continue
		}

		if err := menu.Draw(c); err != nil {
			return written, err
		}
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i)), img); err != nil {
			return written, err
		}
		written++

		if quit {
			break
		}
	}
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return minimenu.NewInfrastructureError("write_frame", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return minimenu.NewInfrastructureError("write_frame", err)
	}
	return f.Close()
}
