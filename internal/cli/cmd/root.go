// Package cmd provides Cobra CLI commands for themehost.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/cli"
	"github.com/bnema/themehost/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options

	rootCmd = &cobra.Command{
		Use:   "themehost",
		Short: "Resolve editor color themes contributed by extensions",
		Long: `themehost discovers installed extensions, registers the color themes
they contribute and resolves the theme named by workbench.colorTheme.

An unknown theme name falls back to the built-in light defaults. A theme
that is installed but broken is reported as an error.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.ConfigDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/themehost)")
	rootCmd.PersistentFlags().StringVar(&appOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
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
	rootCmd.Version = info.Version
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errAppNotInitialized
	}
	return app, nil
}
