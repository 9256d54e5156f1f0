package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themehost/internal/application/port"
	portmocks "github.com/bnema/themehost/internal/application/port/mocks"
	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/theme"
)

func TestGetThemeUseCase_BySettingsID(t *testing.T) {
	loader := portmocks.NewMockResourceLoader(t)
	loader.EXPECT().Read(mock.Anything, acmeDarkURI).Return([]byte(acmeDarkJSON), nil).Once()

	uc := usecase.NewGetThemeUseCase(newThemeRegistry(t, acmeExtension()), loader)
	d, err := uc.Execute(testContext(), "Acme Dark")

	require.NoError(t, err)
	assert.True(t, d.IsLoaded())
	assert.Equal(t, "Acme Dark", d.Label)
}

func TestGetThemeUseCase_ByInternalID(t *testing.T) {
	themes := newThemeRegistry(t, acmeExtension())
	registered, ok := themes.FindBySettingsID("Acme Dark")
	require.True(t, ok)

	loader := portmocks.NewMockResourceLoader(t)
	loader.EXPECT().Read(mock.Anything, acmeDarkURI).Return([]byte(acmeDarkJSON), nil).Once()

	uc := usecase.NewGetThemeUseCase(themes, loader)
	d, err := uc.Execute(testContext(), registered.ID)

	require.NoError(t, err)
	assert.Same(t, registered, d)
}

func TestGetThemeUseCase_NotFoundHasNoFallback(t *testing.T) {
	uc := usecase.NewGetThemeUseCase(newThemeRegistry(t, acmeExtension()), portmocks.NewMockResourceLoader(t))
	d, err := uc.Execute(testContext(), "acme dark")

	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, usecase.ErrThemeNotFound)

	var notFound *usecase.ThemeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"Acme Dark"}, notFound.Suggestions)
	assert.Contains(t, err.Error(), "did you mean Acme Dark")
}

func TestGetThemeUseCase_LoadFailure(t *testing.T) {
	loader := portmocks.NewMockResourceLoader(t)
	loader.EXPECT().Read(mock.Anything, acmeDarkURI).
		Return(nil, &port.ResourceError{URI: acmeDarkURI, Kind: port.ErrResourceNotFound})

	uc := usecase.NewGetThemeUseCase(newThemeRegistry(t, acmeExtension()), loader)
	_, err := uc.Execute(testContext(), "Acme Dark")

	assert.ErrorIs(t, err, theme.ErrThemeLoadFailure)
	assert.NotErrorIs(t, err, usecase.ErrThemeNotFound)
}
