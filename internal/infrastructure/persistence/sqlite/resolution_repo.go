package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/domain/repository"
	"github.com/bnema/themehost/internal/logging"
)

const (
	insertResolution = `INSERT INTO theme_resolutions
    (configured_id, settings_id, theme_id, appearance, fallback, resolved_at)
VALUES (?, ?, ?, ?, ?, ?)`

	selectRecentResolutions = `SELECT id, configured_id, settings_id, theme_id, appearance, fallback, resolved_at
FROM theme_resolutions
ORDER BY resolved_at DESC, id DESC
LIMIT ?`

	pruneResolutions = `DELETE FROM theme_resolutions
WHERE id NOT IN (
    SELECT id FROM theme_resolutions
    ORDER BY resolved_at DESC, id DESC
    LIMIT ?
)`
)

type resolutionRepo struct {
	provider port.DatabaseProvider
}

// NewResolutionRepository creates a SQLite-backed resolution history.
// The database is opened on first use.
func NewResolutionRepository(provider port.DatabaseProvider) repository.ResolutionRepository {
	return &resolutionRepo{provider: provider}
}

func (r *resolutionRepo) Save(ctx context.Context, res *entity.ThemeResolution) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	resolvedAt := res.ResolvedAt
	if resolvedAt.IsZero() {
		resolvedAt = time.Now()
	}

	result, err := db.ExecContext(ctx, insertResolution,
		res.ConfiguredID,
		res.SettingsID,
		res.ThemeID,
		res.Appearance.String(),
		res.Fallback,
		resolvedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save theme resolution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("save theme resolution: %w", err)
	}
	res.ID = id
	res.ResolvedAt = time.UnixMilli(resolvedAt.UnixMilli())

	logging.FromContext(ctx).Trace().Int64("id", id).Str("theme_id", res.ThemeID).Msg("theme resolution saved")
	return nil
}

func (r *resolutionRepo) GetRecent(ctx context.Context, limit int) ([]*entity.ThemeResolution, error) {
	if limit <= 0 {
		return []*entity.ThemeResolution{}, nil
	}

	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, selectRecentResolutions, limit)
	if err != nil {
		return nil, fmt.Errorf("query theme resolutions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.ThemeResolution, 0, limit)
	for rows.Next() {
		res, err := scanResolution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query theme resolutions: %w", err)
	}
	return out, nil
}

func (r *resolutionRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	db, err := r.provider.DB(ctx)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, pruneResolutions, keep)
	if err != nil {
		return 0, fmt.Errorf("prune theme resolutions: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune theme resolutions: %w", err)
	}
	if removed > 0 {
		logging.FromContext(ctx).Debug().Int64("removed", removed).Int("kept", keep).Msg("theme resolution history pruned")
	}
	return removed, nil
}

func scanResolution(rows *sql.Rows) (*entity.ThemeResolution, error) {
	var (
		res        entity.ThemeResolution
		appearance string
		resolvedAt int64
	)
	if err := rows.Scan(
		&res.ID,
		&res.ConfiguredID,
		&res.SettingsID,
		&res.ThemeID,
		&appearance,
		&res.Fallback,
		&resolvedAt,
	); err != nil {
		return nil, fmt.Errorf("scan theme resolution: %w", err)
	}

	parsed, err := entity.ParseAppearance(appearance)
	if err != nil {
		return nil, fmt.Errorf("scan theme resolution %d: %w", res.ID, err)
	}
	res.Appearance = parsed
	res.ResolvedAt = time.UnixMilli(resolvedAt)
	return &res, nil
}
