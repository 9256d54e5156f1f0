package theme_test

import (
	"testing"

	"github.com/bnema/themehost/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestJoinURI(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"file:///ext/acme-dark", "./themes/dark.json", "file:///ext/acme-dark/themes/dark.json"},
		{"file:///ext/acme-dark/", "themes/dark.json", "file:///ext/acme-dark/themes/dark.json"},
		{"builtin:///theme-defaults", "./themes/light_vs.json", "builtin:///theme-defaults/themes/light_vs.json"},
		{"file:///ext/a", "../b/x.json", "file:///ext/b/x.json"},
		{"file:///ext/a", "builtin:///other/x.json", "builtin:///other/x.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, theme.JoinURI(tt.base, tt.rel), tt.base+" + "+tt.rel)
	}
}

func TestSiblingURI(t *testing.T) {
	assert.Equal(t, "file:///ext/a/themes/base.json", theme.SiblingURI("file:///ext/a/themes/dark.json", "./base.json"))
	assert.Equal(t, "file:///ext/a/shared/tokens.json", theme.SiblingURI("file:///ext/a/themes/dark.json", "../shared/tokens.json"))
}
