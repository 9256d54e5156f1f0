package entity_test

import (
	"testing"

	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUITheme(t *testing.T) {
	tests := []struct {
		uiTheme string
		want    entity.Appearance
	}{
		{"vs", entity.AppearanceLight},
		{"vs-dark", entity.AppearanceDark},
		{"hc-black", entity.AppearanceHighContrastDark},
		{"hc-light", entity.AppearanceHighContrastLight},
	}
	for _, tt := range tests {
		t.Run(tt.uiTheme, func(t *testing.T) {
			got, err := entity.ParseUITheme(tt.uiTheme)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.uiTheme, got.UITheme())
		})
	}
}

func TestParseUITheme_Unknown(t *testing.T) {
	_, err := entity.ParseUITheme("VS-Dark")
	require.ErrorIs(t, err, entity.ErrUnknownAppearance)
}

func TestParseAppearance_AcceptsNamesAndUIThemes(t *testing.T) {
	got, err := entity.ParseAppearance("Dark")
	require.NoError(t, err)
	assert.Equal(t, entity.AppearanceDark, got)

	got, err = entity.ParseAppearance("hc-black")
	require.NoError(t, err)
	assert.Equal(t, entity.AppearanceHighContrastDark, got)
	assert.True(t, got.IsDark())
	assert.True(t, got.IsHighContrast())
	assert.Equal(t, "hc-dark", got.String())

	for _, name := range []string{"hc-light", "high-contrast-light", "HC-Light"} {
		got, err = entity.ParseAppearance(name)
		require.NoError(t, err, name)
		assert.Equal(t, entity.AppearanceHighContrastLight, got, name)
	}

	_, err = entity.ParseAppearance("sepia")
	assert.ErrorIs(t, err, entity.ErrUnknownAppearance)
}
