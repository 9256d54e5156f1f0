package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/theme"
)

// ErrThemeNotFound is returned when a requested theme is not registered.
var ErrThemeNotFound = errors.New("theme not found")

// ThemeNotFoundError carries the identifiers closest to the missing one.
type ThemeNotFoundError struct {
	SettingsID  string
	Suggestions []string
}

func (e *ThemeNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("theme %q not found", e.SettingsID)
	}
	return fmt.Sprintf("theme %q not found (did you mean %s?)", e.SettingsID, strings.Join(e.Suggestions, ", "))
}

func (e *ThemeNotFoundError) Is(target error) bool { return target == ErrThemeNotFound }

// GetThemeUseCase loads one registered theme without fallback.
type GetThemeUseCase struct {
	themes *theme.Registry
	loader port.ResourceLoader
}

// NewGetThemeUseCase creates a new GetThemeUseCase.
func NewGetThemeUseCase(themes *theme.Registry, loader port.ResourceLoader) *GetThemeUseCase {
	return &GetThemeUseCase{themes: themes, loader: loader}
}

// Execute returns the loaded descriptor registered under settingsID, or
// looked up by internal id when no settings identifier matches.
func (uc *GetThemeUseCase) Execute(ctx context.Context, settingsID string) (*theme.Descriptor, error) {
	d, ok := uc.themes.FindBySettingsID(settingsID)
	if !ok {
		d, ok = uc.themes.FindByID(settingsID)
	}
	if !ok {
		return nil, &ThemeNotFoundError{
			SettingsID:  settingsID,
			Suggestions: suggestSettingsIDs(settingsID, uc.themes.SettingsIDs()),
		}
	}
	if err := d.EnsureLoaded(ctx, uc.loader); err != nil {
		return nil, err
	}
	return d, nil
}
