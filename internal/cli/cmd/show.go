package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/cli/styles"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <settingsId>",
	Short: "Load one registered theme and print its colors and token rules",
	Long: `Load the theme registered under the given settings identifier (or internal
id) and print every color and token rule. Unlike resolve, an unknown
identifier is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if _, err := app.RegisterThemes(); err != nil {
		return fmt.Errorf("scan extensions: %w", err)
	}

	d, err := app.GetThemeUC.Execute(app.Ctx(), args[0])
	if err != nil {
		return err
	}

	renderer := styles.NewThemeRenderer(app.Theme)
	if showJSON {
		data, err := renderer.RenderJSON(d, false, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderFull(d))
	return nil
}
