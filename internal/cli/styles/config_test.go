package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/themehost/internal/cli/styles"
)

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathEntry{
		{Label: "config", Path: "/home/u/.config/themehost/config.toml"},
		{Label: "extensions", Path: "/home/u/.local/share/themehost/extensions"},
	})
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "extensions")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderInitialized("/tmp/config.toml", false), "Created")
	assert.Contains(t, r.RenderInitialized("/tmp/config.toml", true), "Reset")
	assert.Contains(t, r.RenderExists("/tmp/config.toml"), "--force")
	assert.Contains(t, r.RenderError(errors.New("bad level")), "bad level")
}
