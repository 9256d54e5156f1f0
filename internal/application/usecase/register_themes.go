package usecase

import (
	"context"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
	"github.com/bnema/themehost/internal/theme"
)

// RegisterThemesUseCase scans installed extensions and registers the themes
// they contribute.
type RegisterThemesUseCase struct {
	scanner port.ExtensionScanner
	point   *theme.ContributionPoint
}

// NewRegisterThemesUseCase creates a new RegisterThemesUseCase.
func NewRegisterThemesUseCase(scanner port.ExtensionScanner, point *theme.ContributionPoint) *RegisterThemesUseCase {
	return &RegisterThemesUseCase{
		scanner: scanner,
		point:   point,
	}
}

// RegisterThemesOutput summarizes a registration pass.
type RegisterThemesOutput struct {
	Extensions   int
	Contributors int
	Accepted     int
	Rejected     int
	Registered   int
	Diagnostics  []contrib.Message
}

// Execute runs one scan and feeds the themes declarations to the
// contribution point. Scanner errors are returned unchanged.
func (uc *RegisterThemesUseCase) Execute(ctx context.Context) (*RegisterThemesOutput, error) {
	log := logging.FromContext(ctx)

	extensions, err := uc.scanner.Scan(ctx)
	if err != nil {
		return nil, err
	}

	users := contrib.BuildUsers(ctx, extensions, entity.ThemeContributionPoint)
	result, err := uc.point.Accept(ctx, users)
	if err != nil {
		return nil, err
	}

	out := &RegisterThemesOutput{
		Extensions:   len(extensions),
		Contributors: len(users),
		Accepted:     result.Accepted,
		Rejected:     result.Rejected,
		Registered:   uc.point.Registry().Len(),
		Diagnostics:  contrib.Messages(users),
	}

	log.Info().
		Int("extensions", out.Extensions).
		Int("contributors", out.Contributors).
		Int("registered", out.Registered).
		Int("rejected", out.Rejected).
		Msg("themes registered")

	return out, nil
}
