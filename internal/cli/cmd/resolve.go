package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/cli/styles"
)

var (
	resolveTheme string
	resolveJSON  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the configured color theme",
	Long: `Register every contributed theme, then resolve workbench.colorTheme
(or --theme) to a fully loaded theme.

Unknown identifiers fall back to the built-in light defaults; a registered
theme whose file is missing or malformed fails the command.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveTheme, "theme", "t", "", "settings identifier to resolve instead of the configured one")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	registered, err := app.RegisterThemes()
	if err != nil {
		return fmt.Errorf("scan extensions: %w", err)
	}

	out, err := app.ResolveUC.Execute(app.Ctx(), usecase.ResolveColorThemeInput{SettingsID: resolveTheme})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if resolveJSON {
		data, err := styles.NewThemeRenderer(app.Theme).RenderJSON(out.Theme, out.Fallback, out.Suggestions)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, data)
		return nil
	}

	// Render with the resolved theme's own colours.
	view := styles.NewThemeFromPalette(styles.PaletteFromColors(out.Theme.Colors()))
	fmt.Fprintln(w, styles.NewThemeRenderer(view).RenderSummary(out.Theme, out.Fallback, out.Suggestions))
	if diag := styles.NewDiagnosticsRenderer(app.Theme).Render(registered.Diagnostics); diag != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), diag)
	}
	return nil
}
