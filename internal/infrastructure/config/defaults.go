package config

import "github.com/bnema/themehost/internal/theme"

const (
	defaultScanConcurrency = 4
	defaultCacheEntries    = 64
	defaultHistoryEntries  = 200
)

// DefaultConfig returns the default configuration. Paths that depend on
// the XDG environment are filled in by the Manager.
func DefaultConfig() *Config {
	return &Config{
		Workbench: WorkbenchConfig{
			ColorTheme: theme.DefaultThemeSettingsID,
		},
		Extensions: ExtensionsConfig{
			IncludeBuiltin:  true,
			ScanConcurrency: defaultScanConcurrency,
		},
		Resources: ResourcesConfig{
			CacheEntries: defaultCacheEntries,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: defaultHistoryEntries,
		},
	}
}
