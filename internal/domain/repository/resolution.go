package repository

import (
	"context"

	"github.com/bnema/themehost/internal/domain/entity"
)

// ResolutionRepository persists the history of theme resolutions.
type ResolutionRepository interface {
	// Save records a resolution and assigns its ID.
	Save(ctx context.Context, r *entity.ThemeResolution) error

	// GetRecent returns up to limit resolutions, most recent first.
	GetRecent(ctx context.Context, limit int) ([]*entity.ThemeResolution, error)

	// Prune keeps the newest keep resolutions and returns how many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
