package entity

import "time"

// ThemeResolution records one outcome of resolving the configured theme.
type ThemeResolution struct {
	ID           int64
	ConfiguredID string
	SettingsID   string
	ThemeID      string
	Appearance   Appearance
	Fallback     bool
	ResolvedAt   time.Time
}
