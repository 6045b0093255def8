// Package cli provides the command-line interface for hexpick.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"hexpick/internal/app"
	"hexpick/internal/output"
	"hexpick/internal/version"
	"hexpick/pkg/colorutil"
	"hexpick/ui/prefs"
)

const defaultColor = "#000000"

// Config is the resolved launch configuration of the picker window.
type Config struct {
	Initial   colorutil.Color
	Theme     app.ThemeMode
	Format    output.Format
	HotReload bool
	Prefs     *prefs.Prefs
	Logger    hclog.Logger
}

// flags holds the raw command-line values before resolution.
type flags struct {
	color     string
	theme     string
	output    string
	configDir string
	verbose   bool
	hotReload bool
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with the GUI as the root action.
func NewRootCmd() *cobra.Command {
	return newRootCmd(runGUI)
}

func newRootCmd(launch func(*Config) error) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "hexpick",
		Short: "A small desktop color picker",
		Long: `hexpick opens a borderless window with a saturation/value plane and a hue
strip. The selected color is shown as hsl, hsv, rgb and hex text, each with a
button that copies it to the clipboard.`,
		Version:      version.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, f)
			if err != nil {
				return err
			}
			return launch(cfg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&f.output, "output", "o", output.CSS.String(), "output notation (css, ori)")
	pf.StringVar(&f.configDir, "config-dir", "", "preferences directory (default: user config dir)")

	rf := rootCmd.Flags()
	rf.StringVarP(&f.color, "color", "c", defaultColor, "initial color as #rrggbb")
	rf.StringVarP(&f.theme, "theme", "t", app.ThemeDark.String(), "theme (dark, light)")
	rf.BoolVar(&f.hotReload, "hot-reload", false, "offer a restart when the binary is rebuilt")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newConvertCmd(f))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolve merges flags over saved preferences over defaults.
func resolve(cmd *cobra.Command, f *flags) (*Config, error) {
	logger := newLogger(f.verbose, cmd.ErrOrStderr())

	p, err := loadPrefs(f.configDir)
	if err != nil {
		logger.Warn("ignoring preferences", "error", err)
	}

	initial, err := colorutil.ParseHex(f.color)
	if err != nil {
		return nil, fmt.Errorf("--color: %w", err)
	}

	themeName := f.theme
	if !cmd.Flags().Changed("theme") {
		if saved := p.String(prefs.KeyTheme); saved != "" {
			themeName = saved
		}
	}
	mode, err := app.ParseThemeMode(themeName)
	if err != nil {
		return nil, err
	}

	outputName := f.output
	if !cmd.Flags().Changed("output") {
		if saved := p.String(prefs.KeyOutput); saved != "" {
			outputName = saved
		}
	}
	format, err := output.ParseFormat(outputName)
	if err != nil {
		return nil, err
	}

	hotReload := f.hotReload
	if !cmd.Flags().Changed("hot-reload") {
		hotReload = p.Bool(prefs.KeyHotReload, false)
	}

	logger.Debug("configuration resolved",
		"color", initial.Hex(), "theme", mode, "output", format, "hot_reload", hotReload, "prefs", p.Path())

	return &Config{
		Initial:   initial,
		Theme:     mode,
		Format:    format,
		HotReload: hotReload,
		Prefs:     p,
		Logger:    logger,
	}, nil
}

func loadPrefs(dir string) (*prefs.Prefs, error) {
	if dir == "" {
		return prefs.Load(), nil
	}
	return prefs.LoadFrom(filepath.Clean(dir))
}

func newLogger(verbose bool, w io.Writer) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hexpick",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information including build time and commit hash.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
