package port

// ColorThemeSetting is the configuration key naming the desired theme.
const ColorThemeSetting = "workbench.colorTheme"

// ConfigurationStore is the read side of the user configuration.
type ConfigurationStore interface {
	// GetString returns the value stored under key, or "" when unset.
	GetString(key string) string
}
