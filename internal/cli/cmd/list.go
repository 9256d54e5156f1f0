package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/cli/styles"
	"github.com/bnema/themehost/internal/domain/entity"
)

var (
	listAppearance string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered color themes",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listAppearance, "appearance", "a", "", "only themes of this appearance (light, dark, hc-dark, hc-light)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

type listEntry struct {
	SettingsID string `json:"settingsId"`
	ID         string `json:"id"`
	Appearance string `json:"appearance"`
	Extension  string `json:"extension"`
	Location   string `json:"location"`
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	input := usecase.ListThemesInput{}
	if listAppearance != "" {
		appearance, err := entity.ParseAppearance(listAppearance)
		if err != nil {
			return err
		}
		input.Appearance = &appearance
	}

	registered, err := app.RegisterThemes()
	if err != nil {
		return fmt.Errorf("scan extensions: %w", err)
	}
	out, err := app.ListThemesUC.Execute(app.Ctx(), input)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if listJSON {
		entries := make([]listEntry, 0, len(out.Themes))
		for _, d := range out.Themes {
			entries = append(entries, listEntry{
				SettingsID: d.SettingsID,
				ID:         d.ID,
				Appearance: d.Appearance.String(),
				Extension:  d.ExtensionName,
				Location:   d.Location,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal themes: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, styles.NewThemeListRenderer(app.Theme).Render(out.Themes))
	if diag := styles.NewDiagnosticsRenderer(app.Theme).Render(registered.Diagnostics); diag != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), diag)
	}
	return nil
}
