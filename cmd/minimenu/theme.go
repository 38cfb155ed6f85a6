package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu/platform/cannoli"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/platform/mono"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

var themePreset string

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print a style file",
	Long: `Print a style as TOML. With --style the loaded file is printed back
with every field filled in; otherwise the chosen preset is printed.`,
	Example: `  minimenu theme > style.toml
  minimenu theme --preset cannoli`,
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := themeStyle()
		if err != nil {
			return err
		}
		return style.Encode(cmd.OutOrStdout())
	},
}

func init() {
	themeCmd.Flags().StringVar(&themePreset, "preset", "default", "Preset to print (default, cannoli, mono)")
	rootCmd.AddCommand(themeCmd)
}

func themeStyle() (theme.Style, error) {
	if stylePath != "" {
		return loadStyle()
	}
	switch themePreset {
	case "default", "":
		return theme.Default(), nil
	case "cannoli":
		return cannoli.Style(""), nil
	case "mono":
		return mono.Style(), nil
	default:
		return theme.Style{}, fmt.Errorf("unknown preset %q", themePreset)
	}
}
