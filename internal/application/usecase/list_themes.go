package usecase

import (
	"context"

	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/theme"
)

// ListThemesUseCase lists registered themes.
type ListThemesUseCase struct {
	themes *theme.Registry
}

// NewListThemesUseCase creates a new ListThemesUseCase.
func NewListThemesUseCase(themes *theme.Registry) *ListThemesUseCase {
	return &ListThemesUseCase{themes: themes}
}

// ListThemesInput filters the listing. A nil Appearance lists everything.
type ListThemesInput struct {
	Appearance *entity.Appearance
}

// ListThemesOutput holds descriptors in registration order.
type ListThemesOutput struct {
	Themes []*theme.Descriptor
}

// Execute returns the registered descriptors matching the input.
func (uc *ListThemesUseCase) Execute(_ context.Context, input ListThemesInput) (*ListThemesOutput, error) {
	all := uc.themes.List()
	if input.Appearance == nil {
		return &ListThemesOutput{Themes: all}, nil
	}

	filtered := make([]*theme.Descriptor, 0, len(all))
	for _, d := range all {
		if d.Appearance == *input.Appearance {
			filtered = append(filtered, d)
		}
	}
	return &ListThemesOutput{Themes: filtered}, nil
}
