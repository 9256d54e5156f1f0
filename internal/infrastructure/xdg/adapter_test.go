package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_FollowsXDGEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "themehost"), configDir)

	dataDir, err := adapter.DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "themehost"), dataDir)

	cacheDir, err := adapter.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "cache", "themehost"), cacheDir)

	extDir, err := adapter.ExtensionsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "themehost", "extensions"), extDir)
}

func TestAdapter_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Chdir(t.TempDir())

	dir, err := New().DataDir()
	require.NoError(t, err)
	assert.Equal(t, ".dev", filepath.Base(filepath.Dir(dir)))
}
