package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/domain/repository"
	"github.com/bnema/themehost/internal/logging"
	"github.com/bnema/themehost/internal/theme"
)

// ResolveColorThemeUseCase maps the configured theme setting to a fully
// loaded descriptor.
type ResolveColorThemeUseCase struct {
	config  port.ConfigurationStore
	themes  *theme.Registry
	loader  port.ResourceLoader
	history repository.ResolutionRepository
	keep    int
	now     func() time.Time
}

// ResolveOption configures ResolveColorThemeUseCase.
type ResolveOption func(*ResolveColorThemeUseCase)

// WithResolutionHistory records every resolution in repo, keeping the newest
// keep entries. keep <= 0 disables pruning.
func WithResolutionHistory(repo repository.ResolutionRepository, keep int) ResolveOption {
	return func(uc *ResolveColorThemeUseCase) {
		uc.history = repo
		uc.keep = keep
	}
}

// WithClock overrides the time source used for history records.
func WithClock(now func() time.Time) ResolveOption {
	return func(uc *ResolveColorThemeUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewResolveColorThemeUseCase creates a new ResolveColorThemeUseCase.
func NewResolveColorThemeUseCase(
	config port.ConfigurationStore,
	themes *theme.Registry,
	loader port.ResourceLoader,
	opts ...ResolveOption,
) *ResolveColorThemeUseCase {
	uc := &ResolveColorThemeUseCase{
		config: config,
		themes: themes,
		loader: loader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ResolveColorThemeInput optionally overrides the configured setting.
type ResolveColorThemeInput struct {
	SettingsID string
}

// ResolveColorThemeOutput is the resolved theme. Theme is always loaded.
type ResolveColorThemeOutput struct {
	Theme        *theme.Descriptor
	ConfiguredID string
	Fallback     bool
	Suggestions  []string
}

// Execute resolves the theme named by the input override, or by the
// workbench.colorTheme setting when no override is given.
func (uc *ResolveColorThemeUseCase) Execute(ctx context.Context, input ResolveColorThemeInput) (*ResolveColorThemeOutput, error) {
	configured := input.SettingsID
	if configured == "" {
		configured = uc.config.GetString(port.ColorThemeSetting)
	}
	return uc.Resolve(ctx, configured)
}

// Resolve looks settingsID up and loads the matching descriptor. An unknown
// identifier falls back to a fresh default light descriptor. A theme that is
// found but fails to load is returned as an error matching
// theme.ErrThemeLoadFailure.
func (uc *ResolveColorThemeUseCase) Resolve(ctx context.Context, settingsID string) (*ResolveColorThemeOutput, error) {
	log := logging.FromContext(ctx)

	out := &ResolveColorThemeOutput{ConfiguredID: settingsID}

	d, ok := uc.themes.FindBySettingsID(settingsID)
	if !ok {
		out.Fallback = true
		out.Suggestions = suggestSettingsIDs(settingsID, uc.themes.SettingsIDs())
		log.Debug().
			Str("settings_id", settingsID).
			Strs("did_you_mean", out.Suggestions).
			Msg("color theme not found, using default")
		d = theme.NewDefaultDescriptor()
	}

	if err := d.EnsureLoaded(ctx, uc.loader); err != nil {
		return nil, fmt.Errorf("resolve color theme %q: %w", settingsID, err)
	}
	out.Theme = d

	log.Debug().
		Str("settings_id", settingsID).
		Str("theme_id", d.ID).
		Str("appearance", d.Appearance.String()).
		Bool("fallback", out.Fallback).
		Msg("color theme resolved")

	uc.record(ctx, out)
	return out, nil
}

func (uc *ResolveColorThemeUseCase) record(ctx context.Context, out *ResolveColorThemeOutput) {
	if uc.history == nil {
		return
	}
	log := logging.FromContext(ctx)

	entry := &entity.ThemeResolution{
		ConfiguredID: out.ConfiguredID,
		SettingsID:   out.Theme.SettingsID,
		ThemeID:      out.Theme.ID,
		Appearance:   out.Theme.Appearance,
		Fallback:     out.Fallback,
		ResolvedAt:   uc.now(),
	}
	if err := uc.history.Save(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("failed to record theme resolution")
		return
	}
	if uc.keep <= 0 {
		return
	}
	if _, err := uc.history.Prune(ctx, uc.keep); err != nil {
		log.Warn().Err(err).Msg("failed to prune theme resolution history")
	}
}
