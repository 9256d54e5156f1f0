package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themehost/internal/application/usecase"
	"github.com/bnema/themehost/internal/domain/entity"
	repomocks "github.com/bnema/themehost/internal/domain/repository/mocks"
)

func TestListResolutionsUseCase_Execute(t *testing.T) {
	recent := []*entity.ThemeResolution{
		{ID: 2, SettingsID: "Acme Dark", ThemeID: "vs-dark acme-dark-acme-dark", ResolvedAt: time.Now()},
		{ID: 1, SettingsID: "Default Light", ThemeID: "vs", Fallback: true},
	}

	t.Run("uses the given limit", func(t *testing.T) {
		repo := repomocks.NewMockResolutionRepository(t)
		repo.EXPECT().GetRecent(mock.Anything, 5).Return(recent, nil).Once()

		out, err := usecase.NewListResolutionsUseCase(repo).Execute(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, recent, out)
	})

	t.Run("defaults a non-positive limit", func(t *testing.T) {
		repo := repomocks.NewMockResolutionRepository(t)
		repo.EXPECT().GetRecent(mock.Anything, 20).Return(recent[:1], nil).Once()

		out, err := usecase.NewListResolutionsUseCase(repo).Execute(testContext(), 0)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := repomocks.NewMockResolutionRepository(t)
		repo.EXPECT().GetRecent(mock.Anything, 20).Return(nil, errors.New("locked")).Once()

		_, err := usecase.NewListResolutionsUseCase(repo).Execute(testContext(), -1)
		assert.EqualError(t, err, "locked")
	})
}
