package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/domain/entity"
)

func TestListThemesUseCase_Execute(t *testing.T) {
	themes := newThemeRegistry(t,
		acmeExtension(),
		themeExtension("solar", `[
			{"label": "Solarized Light", "uiTheme": "vs", "path": "./light.json"},
			{"label": "Solarized Dark", "uiTheme": "vs-dark", "path": "./dark.json"}
		]`),
	)
	uc := usecase.NewListThemesUseCase(themes)

	all, err := uc.Execute(testContext(), usecase.ListThemesInput{})
	require.NoError(t, err)
	require.Len(t, all.Themes, 3)
	assert.Equal(t, "Acme Dark", all.Themes[0].SettingsID)
	assert.Equal(t, "Solarized Light", all.Themes[1].SettingsID)

	dark := entity.AppearanceDark
	filtered, err := uc.Execute(testContext(), usecase.ListThemesInput{Appearance: &dark})
	require.NoError(t, err)
	require.Len(t, filtered.Themes, 2)
	for _, d := range filtered.Themes {
		assert.Equal(t, entity.AppearanceDark, d.Appearance)
	}

	hc := entity.AppearanceHighContrastLight
	none, err := uc.Execute(testContext(), usecase.ListThemesInput{Appearance: &hc})
	require.NoError(t, err)
	assert.Empty(t, none.Themes)
}
