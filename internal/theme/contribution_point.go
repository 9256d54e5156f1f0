package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
)

// DescriptorFactory builds a descriptor from one validated declaration entry.
type DescriptorFactory func(ext entity.Extension, c entity.ThemeContribution) (*Descriptor, error)

// PointOption configures RegisterContributionPoint.
type PointOption func(*ContributionPoint)

// WithDescriptorFactory replaces NewDescriptor as the construction function.
func WithDescriptorFactory(f DescriptorFactory) PointOption {
	return func(cp *ContributionPoint) {
		if f != nil {
			cp.factory = f
		}
	}
}

// ContributionPoint accepts themes declarations and folds them into a
// Registry.
type ContributionPoint struct {
	point   *contrib.Point
	themes  *Registry
	factory DescriptorFactory
}

// AcceptResult summarizes one AcceptUsers call.
type AcceptResult struct {
	Accepted int
	Rejected int
	Replaced []Replaced
}

// RegisterContributionPoint registers the themes point on reg, or returns
// the already registered one when it feeds the same themes registry. Only a
// duplicate registration is recovered; other errors propagate.
func RegisterContributionPoint(
	ctx context.Context,
	reg *contrib.Registry,
	themes *Registry,
	opts ...PointOption,
) (*ContributionPoint, error) {
	log := logging.FromContext(ctx)

	point, err := reg.Register(contrib.PointDescriptor{
		Name:        entity.ThemeContributionPoint,
		Description: "Contributes color themes.",
		Schema:      ContributionSchema(),
	})
	if err != nil {
		var dup *contrib.DuplicateRegistrationError
		if !errors.As(err, &dup) {
			return nil, fmt.Errorf("register %s contribution point: %w", entity.ThemeContributionPoint, err)
		}
		log.Debug().Str("point", dup.Name).Msg("contribution point already registered, reusing it")
		if cp, ok := dup.Existing.Handler().(*ContributionPoint); ok {
			if cp.themes != themes {
				return nil, fmt.Errorf("register %s contribution point: %w", entity.ThemeContributionPoint, ErrRegistryMismatch)
			}
			// Options only apply to the first registration.
			return cp, nil
		}
		point = dup.Existing
	}

	cp := &ContributionPoint{
		point:   point,
		themes:  themes,
		factory: NewDescriptor,
	}
	for _, opt := range opts {
		opt(cp)
	}

	if err := point.SetHandler(cp); err != nil {
		return nil, fmt.Errorf("register %s contribution point: %w", entity.ThemeContributionPoint, err)
	}
	return cp, nil
}

// Name returns the contribution point name.
func (cp *ContributionPoint) Name() string { return cp.point.Name() }

// Registry returns the registry fed by this point.
func (cp *ContributionPoint) Registry() *Registry { return cp.themes }

// AcceptUsers implements contrib.Handler.
func (cp *ContributionPoint) AcceptUsers(ctx context.Context, users []contrib.User) error {
	_, err := cp.Accept(ctx, users)
	return err
}

// Accept decodes every user's declaration, reports malformed entries through
// the user's collector and replaces the produced descriptors into the
// registry as one batch. Identifiers absent from the batch are kept.
func (cp *ContributionPoint) Accept(ctx context.Context, users []contrib.User) (AcceptResult, error) {
	log := logging.FromContext(ctx).With().Str("component", "theme").Logger()

	var (
		result AcceptResult
		batch  []*Descriptor
	)
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		extID := u.Extension.ID()
		var entries []json.RawMessage
		if err := json.Unmarshal(u.Value, &entries); err != nil {
			cp.report(u, &ContributionError{Extension: extID, Index: -1, Message: "expected an array of theme declarations"})
			result.Rejected++
			continue
		}

		for i, raw := range entries {
			d, cerr := cp.build(u.Extension, i, raw)
			if cerr != nil {
				cp.report(u, cerr)
				result.Rejected++
				continue
			}
			batch = append(batch, d)
		}
	}

	result.Replaced = cp.themes.ReplaceBatch(batch)
	result.Accepted = len(batch)

	for _, r := range result.Replaced {
		if r.InBatch {
			log.Warn().
				Str("settings_id", r.SettingsID).
				Str("discarded", r.Previous.ID).
				Str("kept", r.Current.ID).
				Msg("duplicate theme settings id, later declaration wins")
			continue
		}
		log.Debug().
			Str("settings_id", r.SettingsID).
			Str("previous", r.Previous.ID).
			Str("current", r.Current.ID).
			Msg("theme replaced")
	}

	log.Debug().
		Int("accepted", result.Accepted).
		Int("rejected", result.Rejected).
		Int("registered", cp.themes.Len()).
		Msg("theme contributions accepted")
	return result, nil
}

func (cp *ContributionPoint) build(ext entity.Extension, index int, raw json.RawMessage) (*Descriptor, *ContributionError) {
	extID := ext.ID()

	var c entity.ThemeContribution
	if err := json.Unmarshal(raw, &c); err != nil {
		cerr := &ContributionError{Extension: extID, Index: index, Message: "expected an object"}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			cerr.Field = typeErr.Field
			cerr.Message = "expected a " + typeErr.Type.String()
		}
		return nil, cerr
	}

	if err := c.Validate(); err != nil {
		cerr := &ContributionError{Extension: extID, Index: index, Message: err.Error()}
		var fieldErr *entity.FieldError
		if errors.As(err, &fieldErr) {
			cerr.Field = fieldErr.Field
			cerr.Message = fieldErr.Message
		}
		return nil, cerr
	}

	d, err := cp.factory(ext, c)
	if err != nil {
		return nil, &ContributionError{Extension: extID, Index: index, Message: err.Error()}
	}
	return d, nil
}

func (cp *ContributionPoint) report(u contrib.User, err *ContributionError) {
	if u.Collector != nil {
		u.Collector.Error(err.Error())
	}
}
