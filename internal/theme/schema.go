package theme

import (
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

// EntrySchema returns the JSON schema of one themes declaration entry.
func EntrySchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&entity.ThemeContribution{})
	s.Version = ""
	s.Description = "A colour theme contributed by the extension"
	return s
}

// ContributionSchema returns the JSON schema of a themes declaration.
func ContributionSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		ID:          "https://github.com/bnema/themehost/themes-contribution.schema.json",
		Title:       "Theme contributions",
		Description: "Contributes colour themes",
		Type:        "array",
		Items:       EntrySchema(),
	}
}
