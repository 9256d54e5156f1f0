package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/cli/styles"
	"github.com/bnema/themehost/internal/infrastructure/config"
)

var (
	configForce   bool
	configJSON    bool
	configSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the files and directories themehost uses",
	RunE:  runConfigPath,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	RunE:  runConfigKeys,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file holding the defaults",
	Long: `Write config.toml and config.schema.json with every default value.
An existing config is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configKeysCmd, configInitCmd, configShowCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configKeysCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVarP(&configSection, "section", "s", "", "only keys of this section")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entries := []styles.PathEntry{
		{Label: "config", Path: app.ConfigManager.GetConfigFile()},
		{Label: "database", Path: app.Config.Database.Path},
	}
	for _, dir := range app.Config.Extensions.Dirs {
		entries = append(entries, styles.PathEntry{Label: "extensions", Path: dir})
	}
	if cacheDir, err := app.Paths.CacheDir(); err == nil {
		entries = append(entries, styles.PathEntry{Label: "cache", Path: cacheDir})
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderPaths(entries))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(out.Keys))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.ConfigManager.GetConfigFile()

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(statErr))
		return statErr
	}
	if exists && !configForce {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	if err := config.GenerateSchemaFile(app.ConfigManager.ConfigDir()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderInitialized(path, exists))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
