package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themehost/internal/infrastructure/config"
	"github.com/bnema/themehost/internal/theme"
)

var schemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the themes contribution point",
	Long: `Print the JSON schema that validates the "themes" entry of an extension
manifest. With --config, print the schema of config.toml instead.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the configuration file schema")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	schema := theme.ContributionSchema()
	if schemaConfig {
		schema = config.JSONSchema()
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
