package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
	"github.com/bnema/themehost/internal/theme"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

const acmeDarkURI = "file:///ext/acme-dark/themes/dark.json"

const acmeDarkJSON = `{
	"name": "Acme Dark",
	"type": "dark",
	"colors": {"editor.background": "#1e1e2e", "editor.foreground": "#CDD6F4"},
	"tokenColors": [{"scope": "comment", "settings": {"foreground": "#6c7086", "fontStyle": "italic"}}]
}`

func themeExtension(name, themes string) entity.Extension {
	return entity.Extension{
		Name:        name,
		Location:    "file:///ext/" + name,
		Contributes: map[string]json.RawMessage{entity.ThemeContributionPoint: json.RawMessage(themes)},
	}
}

func acmeExtension() entity.Extension {
	return themeExtension("acme-dark",
		`[{"label": "Acme Dark", "uiTheme": "vs-dark", "path": "./themes/dark.json"}]`)
}

// newThemeRegistry registers the themes contributed by exts.
func newThemeRegistry(t *testing.T, exts ...entity.Extension) *theme.Registry {
	t.Helper()
	ctx := testContext()

	themes := theme.NewRegistry()
	point, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes)
	require.NoError(t, err)

	_, err = point.Accept(ctx, contrib.BuildUsers(ctx, exts, entity.ThemeContributionPoint))
	require.NoError(t, err)
	return themes
}
