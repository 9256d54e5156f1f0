package theme

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"strings"

	"github.com/bnema/themehost/internal/application/port"
	"github.com/bnema/themehost/internal/domain/entity"
)

// Identity of the built-in fallback theme.
const (
	DefaultThemeID         = entity.UIThemeLight
	DefaultThemeSettingsID = "Default Light"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

const defaultLightPath = "defaults/light.json"

// NewDefaultDescriptor returns a fresh, unloaded light placeholder owned by
// no extension. Loading it materializes the base editor defaults.
func NewDefaultDescriptor() *Descriptor {
	return &Descriptor{
		ID:          DefaultThemeID,
		SettingsID:  DefaultThemeSettingsID,
		Label:       DefaultThemeSettingsID,
		Appearance:  entity.AppearanceLight,
		Description: "Built-in editor defaults",
		builtin:     true,
	}
}

// IsDefault reports whether d is a fallback placeholder.
func (d *Descriptor) IsDefault() bool {
	return d.builtin
}

func loadDefaults(ctx context.Context) (*Content, error) {
	data, err := defaultsFS.ReadFile(defaultLightPath)
	if err != nil {
		return nil, err
	}
	return ParseContent(ctx, embeddedDefaults{}, "embedded:///"+defaultLightPath, data)
}

// embeddedDefaults serves includes of the embedded defaults.
type embeddedDefaults struct{}

func (embeddedDefaults) Read(_ context.Context, uri string) ([]byte, error) {
	data, err := defaultsFS.ReadFile(strings.TrimPrefix(uri, "embedded:///"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &port.ResourceError{URI: uri, Kind: port.ErrResourceNotFound, Cause: err}
	}
	if err != nil {
		return nil, &port.ResourceError{URI: uri, Kind: port.ErrResourceUnreadable, Cause: err}
	}
	return data, nil
}
