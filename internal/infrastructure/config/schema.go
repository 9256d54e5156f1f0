package config

// Config represents the complete configuration for themehost.
type Config struct {
	Workbench  WorkbenchConfig  `mapstructure:"workbench" toml:"workbench" json:"workbench"`
	Extensions ExtensionsConfig `mapstructure:"extensions" toml:"extensions" json:"extensions"`
	Resources  ResourcesConfig  `mapstructure:"resources" toml:"resources" json:"resources"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	// History controls recording of theme resolutions.
	History  HistoryConfig  `mapstructure:"history" toml:"history" json:"history"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
}

// WorkbenchConfig holds editor-facing settings.
type WorkbenchConfig struct {
	// ColorTheme is the settings identifier of the active colour theme.
	ColorTheme string `mapstructure:"colorTheme" toml:"colorTheme" json:"colorTheme" jsonschema:"description=Settings identifier of the colour theme to activate"`
}

// ExtensionsConfig controls extension discovery.
type ExtensionsConfig struct {
	// Dirs are searched in order; each holds one sub-directory per extension.
	Dirs []string `mapstructure:"dirs" toml:"dirs" json:"dirs" jsonschema:"description=Directories holding installed extensions"`
	// IncludeBuiltin scans the embedded theme-defaults extension first.
	IncludeBuiltin bool `mapstructure:"include_builtin" toml:"include_builtin" json:"include_builtin" jsonschema:"description=Scan the built-in theme extensions"`
	// ScanConcurrency bounds the number of manifests parsed in parallel.
	ScanConcurrency int `mapstructure:"scan_concurrency" toml:"scan_concurrency" json:"scan_concurrency" jsonschema:"minimum=1,maximum=64"`
}

// ResourcesConfig controls theme resource reads.
type ResourcesConfig struct {
	// CacheEntries is the LRU size for raw resources (0 disables caching).
	CacheEntries int `mapstructure:"cache_entries" toml:"cache_entries" json:"cache_entries" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// HistoryConfig holds resolution history settings.
type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	MaxEntries int  `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=0"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	// Path is resolved to $XDG_DATA_HOME/themehost/themehost.db when empty.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}
