package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/cli/styles"
	"github.com/bnema/themehost/internal/logging"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL and how many themes are installed.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	extensions, themes := 0, 0
	if out, err := app.RegisterThemes(); err != nil {
		// About still renders without a scan.
		logging.FromContext(app.Ctx()).Debug().Err(err).Msg("extension scan failed")
	} else {
		extensions, themes = out.Extensions, out.Registered
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(app.BuildInfo, themes, extensions))
	return nil
}
