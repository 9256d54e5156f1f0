package config

import (
	"strconv"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionWorkbench  = "Workbench"
	SectionExtensions = "Extensions"
	SectionResources  = "Resources"
	SectionLogging    = "Logging"
	SectionHistory    = "History"
	SectionDatabase   = "Database"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	return []entity.ConfigKeyInfo{
		{
			Key:         port.ColorThemeSetting,
			Type:        "string",
			Default:     defaults.Workbench.ColorTheme,
			Description: "Settings identifier of the active colour theme (unknown values fall back to the default light theme)",
			Section:     SectionWorkbench,
		},
		{
			Key:         "extensions.dirs",
			Type:        "[]string",
			Default:     "[$XDG_DATA_HOME/themehost/extensions]",
			Description: "Directories searched for installed extensions, in order",
			Section:     SectionExtensions,
		},
		{
			Key:         "extensions.include_builtin",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Extensions.IncludeBuiltin),
			Description: "Scan the built-in theme-defaults extension before user extensions",
			Section:     SectionExtensions,
		},
		{
			Key:         "extensions.scan_concurrency",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Extensions.ScanConcurrency),
			Description: "Number of extension manifests parsed in parallel",
			Range:       "1-" + strconv.Itoa(maxScanConcurrency),
			Section:     SectionExtensions,
		},
		{
			Key:         "resources.cache_entries",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Resources.CacheEntries),
			Description: "Theme resources kept in the in-memory LRU cache (0 disables it)",
			Section:     SectionResources,
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      validLogLevels,
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      validLogFormats,
			Section:     SectionLogging,
		},
		{
			Key:         "history.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.History.Enabled),
			Description: "Record every theme resolution in the database",
			Section:     SectionHistory,
		},
		{
			Key:         "history.max_entries",
			Type:        "int",
			Default:     strconv.Itoa(defaults.History.MaxEntries),
			Description: "Resolutions kept after pruning (0 keeps everything)",
			Section:     SectionHistory,
		},
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/themehost/" + databaseName,
			Description: "SQLite database holding the resolution history",
			Section:     SectionDatabase,
		},
	}
}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)
