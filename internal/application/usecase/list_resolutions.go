package usecase

import (
	"context"

	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/domain/repository"
)

const defaultResolutionLimit = 20

// ListResolutionsUseCase returns recorded theme resolutions.
type ListResolutionsUseCase struct {
	repo repository.ResolutionRepository
}

// NewListResolutionsUseCase creates a new ListResolutionsUseCase.
func NewListResolutionsUseCase(repo repository.ResolutionRepository) *ListResolutionsUseCase {
	return &ListResolutionsUseCase{repo: repo}
}

// Execute returns up to limit resolutions, most recent first.
func (uc *ListResolutionsUseCase) Execute(ctx context.Context, limit int) ([]*entity.ThemeResolution, error) {
	if limit <= 0 {
		limit = defaultResolutionLimit
	}
	return uc.repo.GetRecent(ctx, limit)
}
