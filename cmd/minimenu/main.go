// Minimenu drives the menu engine outside of an application.
//
// It opens a demo settings menu in an SDL window, replays scripted input
// headlessly into PNG frames, and prints style files.
//
// Usage:
//
//	minimenu [command] [flags]
//
// Environment variables are read from a .env file in the working directory
// when one exists. See 'minimenu --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/minimenu/pkg/minimenu"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/i18n"
	"github.com/BrandonKowalski/minimenu/pkg/minimenu/theme"
)

// Global flags
var (
	stylePath  string
	lang       string
	localesDir string
	logFile    string
	logLevel   string
	envFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minimenu",
	Short: "Selection menus for small pixel displays",
	Long: `Minimenu runs the menu engine against a demo settings menu.

Use 'run' to try it in a window with the keyboard or a single hardware
button, 'render' to replay a YAML input script into PNG frames without a
display, and 'theme' to print a style file to start customizing from.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadEnv(envFile)
		if logFile != "" {
			minimenu.SetLogPath(logFile)
		}
		minimenu.SetRawLogLevel(logLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		minimenu.CloseLogger()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&stylePath, "style", "", "Style file (TOML); defaults to the built-in style")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Display language, e.g. fr or pt-BR")
	rootCmd.PersistentFlags().StringVar(&localesDir, "locales", "locales", "Directory of <lang>.toml message files")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
}

// loadEnv reads path into the environment. A missing file is not an error.
func loadEnv(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		minimenu.GetLogger().Warn("Could not load environment file", "path", path, "error", err)
	}
}

// loadStyle returns the style from --style, or the built-in one.
func loadStyle() (theme.Style, error) {
	if stylePath == "" {
		return theme.Default(), nil
	}
	return theme.Load(stylePath)
}

// loadSettings resolves the style and language flags into menu settings.
func loadSettings(style theme.Style) (minimenu.Settings, error) {
	settings, err := minimenu.SettingsFromStyle(style)
	if err != nil {
		return minimenu.Settings{}, err
	}
	if lang == "" {
		return settings, nil
	}

	catalog, err := loadCatalog(localesDir, lang)
	if err != nil {
		return minimenu.Settings{}, err
	}
	settings.Localizer = catalog
	return settings, nil
}

func loadCatalog(dir, preferred string) (*i18n.Catalog, error) {
	catalog := i18n.New(language.English)

	files, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := catalog.LoadFile(file); err != nil {
			return nil, err
		}
	}
	if err := catalog.SetLanguage(preferred); err != nil {
		return nil, err
	}

	minimenu.GetLogger().Info("Loaded translations",
		"files", len(files),
		"language", catalog.Language().String())
	return catalog, nil
}
