package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty color theme is allowed", mutate: func(c *Config) { c.Workbench.ColorTheme = "" }},
		{name: "empty dir", mutate: func(c *Config) { c.Extensions.Dirs = []string{"/ok", " "} }, wantKey: "extensions.dirs[1]"},
		{name: "concurrency too high", mutate: func(c *Config) { c.Extensions.ScanConcurrency = 65 }, wantKey: "extensions.scan_concurrency"},
		{name: "negative cache", mutate: func(c *Config) { c.Resources.CacheEntries = -1 }, wantKey: "resources.cache_entries"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "negative history", mutate: func(c *Config) { c.History.MaxEntries = -5 }, wantKey: "history.max_entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantKey)
				return
			}
			require.NoError(t, err)
		})
	}
}
