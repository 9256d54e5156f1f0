package theme

import (
	"context"
	"maps"
	"strings"
	"sync"
	"unicode"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
	"golang.org/x/sync/singleflight"
)

// LoadState is the loading stage of a descriptor.
type LoadState int

const (
	StateUnloaded LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unloaded"
	}
}

// Descriptor identifies a colour theme and lazily materializes its content.
// Identity fields are set at construction and must not be changed once the
// descriptor is shared. A Descriptor must not be copied.
type Descriptor struct {
	ID            string
	SettingsID    string
	Label         string
	Appearance    entity.Appearance
	Location      string
	ExtensionName string
	Description   string

	builtin bool
	flight  singleflight.Group

	mu                   sync.RWMutex
	state                LoadState
	colors               map[string]string
	rules                []entity.TokenRule
	semanticHighlighting bool
	lastErr              error
}

// SettingsIDFor returns the identifier users write in configuration for c:
// the explicit settingsId, else the label, else the id.
func SettingsIDFor(c entity.ThemeContribution) string {
	return c.EffectiveSettingsID()
}

// NewDescriptor builds an unloaded descriptor for a validated contribution
// of ext.
func NewDescriptor(ext entity.Extension, c entity.ThemeContribution) (*Descriptor, error) {
	appearance, err := entity.ParseUITheme(c.UITheme)
	if err != nil {
		return nil, err
	}

	settingsID := SettingsIDFor(c)
	label := strings.TrimSpace(c.Label)
	if label == "" {
		label = settingsID
	}

	return &Descriptor{
		ID:            c.UITheme + " " + ext.ID() + "-" + slug(settingsID),
		SettingsID:    settingsID,
		Label:         label,
		Appearance:    appearance,
		Location:      JoinURI(ext.Location, c.Path),
		ExtensionName: ext.ID(),
		Description:   c.Description,
	}, nil
}

// State returns the current loading stage.
func (d *Descriptor) State() LoadState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// IsLoaded reports whether the content is materialized.
func (d *Descriptor) IsLoaded() bool {
	return d.State() == StateLoaded
}

// Err returns the error of the last failed load, if any.
func (d *Descriptor) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastErr
}

// Colors returns a copy of the colour map. It is empty until loaded.
func (d *Descriptor) Colors() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return maps.Clone(d.colors)
}

// Color returns one colour value.
func (d *Descriptor) Color(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.colors[key]
	return v, ok
}

// TokenRules returns a copy of the token rules in theme order.
func (d *Descriptor) TokenRules() []entity.TokenRule {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]entity.TokenRule, len(d.rules))
	for i, r := range d.rules {
		out[i] = r.Clone()
	}
	return out
}

// SemanticHighlighting reports the theme's semantic highlighting flag.
func (d *Descriptor) SemanticHighlighting() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.semanticHighlighting
}

// EnsureLoaded materializes the content through loader. It is a no-op once
// loaded. Concurrent callers share one in-flight load, and a failed load is
// retried on the next call. Failures are returned as *LoadError.
//
// The shared load ignores cancellation of whichever caller started it. A
// caller whose own ctx ends gets ctx.Err() back and the load keeps going for
// the others.
func (d *Descriptor) EnsureLoaded(ctx context.Context, loader port.ResourceLoader) error {
	if d.IsLoaded() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := d.flight.DoChan("load", func() (any, error) {
		d.mu.Lock()
		if d.state == StateLoaded {
			d.mu.Unlock()
			return nil, nil
		}
		d.state = StateLoading
		d.mu.Unlock()

		content, err := d.fetch(loadCtx, loader)

		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.state = StateFailed
			d.lastErr = &LoadError{ThemeID: d.ID, Location: d.Location, Err: err}
			return nil, d.lastErr
		}
		d.colors = content.Colors
		d.rules = content.TokenRules
		d.semanticHighlighting = content.SemanticHighlighting
		d.lastErr = nil
		d.state = StateLoaded
		return nil, nil
	})

	log := logging.FromContext(ctx)
	select {
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Str("theme_id", d.ID).Msg("stopped waiting for theme load")
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			log.Debug().Err(res.Err).Str("theme_id", d.ID).Bool("shared", res.Shared).Msg("theme load failed")
			return res.Err
		}
		log.Debug().Str("theme_id", d.ID).Bool("shared", res.Shared).Msg("theme loaded")
		return nil
	}
}

func (d *Descriptor) fetch(ctx context.Context, loader port.ResourceLoader) (*Content, error) {
	if d.builtin {
		return loadDefaults(ctx)
	}
	return LoadContent(ctx, loader, d.Location)
}

// slug lower-cases s and collapses every run of non alphanumerics into "-".
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
