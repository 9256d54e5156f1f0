package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes rootCmd against isolated XDG directories and returns
// what the command wrote to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("THEMEHOST_COLOR_THEME", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))

	// Flag values live in package variables and survive between runs.
	resolveTheme, resolveJSON = "", false
	listAppearance, listJSON = "", false
	showJSON, historyJSON, historyLimit = false, false, defaultHistoryLimit
	schemaConfig, configForce, configJSON, configSection = false, false, false, ""
	appOpts.ConfigDir, appOpts.LogLevel = "", "error"
	t.Cleanup(func() { app = nil })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestResolveCommand_KnownTheme(t *testing.T) {
	out, err := runCommand(t, "resolve", "--theme", "Default Dark", "--json", "--log-level", "error")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Default Dark", got["settingsId"])
	assert.Equal(t, "dark", got["appearance"])
	assert.Nil(t, got["fallback"])
}

func TestResolveCommand_UnknownThemeFallsBack(t *testing.T) {
	out, err := runCommand(t, "resolve", "--theme", "Not Installed", "--json", "--log-level", "error")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["fallback"])
}

func TestListCommand_BuiltinThemes(t *testing.T) {
	out, err := runCommand(t, "list", "--json", "--log-level", "error")
	require.NoError(t, err)

	var entries []listEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 4)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.SettingsID)
		assert.Equal(t, "builtin.theme-defaults", e.Extension)
	}
	assert.Contains(t, ids, "Default Light")
	assert.Contains(t, ids, "Default High Contrast Light")
}

func TestListCommand_InvalidAppearance(t *testing.T) {
	_, err := runCommand(t, "list", "--appearance", "sepia", "--log-level", "error")
	assert.Error(t, err)
}

func TestSchemaCommand(t *testing.T) {
	out, err := runCommand(t, "schema", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "uiTheme")
}

func TestConfigInit_DoesNotOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	_, err := runCommand(t, "config", "init", "--config-dir", dir, "--log-level", "error")
	require.NoError(t, err)
	require.FileExists(t, path)
	require.FileExists(t, filepath.Join(dir, "config.schema.json"))

	marker := []byte("# hand edited\n")
	require.NoError(t, os.WriteFile(path, marker, 0o644))

	out, err := runCommand(t, "config", "init", "--config-dir", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, marker, data)
}
