// Package cmd provides Cobra CLI commands for tessera.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/bootstrap"
	"github.com/bnema/tessera/internal/cli"
	"github.com/bnema/tessera/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	globals   cli.Options

	rootCmd = &cobra.Command{
		Use:   "tessera",
		Short: "A tabbed, tiling terminal multiplexer",
		Long: `Tessera - tabs of tiled shells in a single terminal.

Each tab holds a tree of panes split side by side or stacked, every pane
running its own shell. Everything is driven by configurable key chords:
split, close and move focus between panes, open, close, rename and switch
tabs, and reload the config and theme without losing the layout.

Run 'tessera' with no subcommand to start the multiplexer.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "tessera", "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(globals)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := globals
			opts.Version = buildInfo.Version
			return bootstrap.Run(cmd.Context(), opts)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&globals.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/tessera/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globals.ThemeFile, "theme-file", "", "theme file overriding theme_file from the config")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Short()
}
