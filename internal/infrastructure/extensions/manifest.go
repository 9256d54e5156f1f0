package extensions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/bnema/themehost/internal/domain/entity"
)

// ManifestFile is the manifest name looked up in each extension directory.
const ManifestFile = "package.json"

// ErrInvalidManifest is returned for manifests that cannot describe an extension.
var ErrInvalidManifest = errors.New("invalid extension manifest")

type manifest struct {
	Name        string                     `json:"name"`
	Publisher   string                     `json:"publisher"`
	Version     string                     `json:"version"`
	DisplayName string                     `json:"displayName"`
	Contributes map[string]json.RawMessage `json:"contributes"`
}

// ParseManifest decodes a package.json. Comments and trailing commas are accepted.
func ParseManifest(data []byte) (entity.Extension, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return entity.Extension{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	var m manifest
	if err := json.Unmarshal(std, &m); err != nil {
		return entity.Extension{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if strings.TrimSpace(m.Name) == "" {
		return entity.Extension{}, fmt.Errorf("%w: missing name", ErrInvalidManifest)
	}

	return entity.Extension{
		Name:        m.Name,
		Publisher:   m.Publisher,
		Version:     m.Version,
		DisplayName: m.DisplayName,
		Contributes: m.Contributes,
	}, nil
}
