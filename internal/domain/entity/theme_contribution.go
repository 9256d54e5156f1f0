package entity

import (
	"fmt"
	"slices"
	"strings"
)

// ThemeContributionPoint is the contribution point name under which
// extensions declare colour themes.
const ThemeContributionPoint = "themes"

// ThemeContribution is one entry of an extension's "themes" contribution.
type ThemeContribution struct {
	ID          string `json:"id,omitempty" jsonschema:"description=Id of the color theme as used in the user settings (falls back to label)"`
	Label       string `json:"label,omitempty" jsonschema:"description=Label of the color theme as shown in the UI"`
	UITheme     string `json:"uiTheme" jsonschema:"enum=vs,enum=vs-dark,enum=hc-black,enum=hc-light,description=Base theme defining the colors around the editor"`
	Path        string `json:"path" jsonschema:"description=Path of the theme file relative to the extension root"`
	SettingsID  string `json:"settingsId,omitempty" jsonschema:"description=Identifier written in workbench.colorTheme (defaults to label)"`
	Description string `json:"description,omitempty"`
}

// FieldError describes an invalid field of a declaration.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the structural requirements of a theme contribution.
func (c ThemeContribution) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return &FieldError{Field: "path", Message: "expected a non-empty string"}
	}
	if !slices.Contains(UIThemes(), c.UITheme) {
		return &FieldError{
			Field:   "uiTheme",
			Message: fmt.Sprintf("expected one of %s, got %q", strings.Join(UIThemes(), ", "), c.UITheme),
		}
	}
	if strings.TrimSpace(c.ID) == "" && strings.TrimSpace(c.Label) == "" {
		return &FieldError{Field: "label", Message: "either label or id must be set"}
	}
	return nil
}

// EffectiveSettingsID returns the identifier users write in configuration:
// the explicit settingsId, else the label, else the id. Blank values are
// skipped; the chosen one is returned as written since lookups are exact.
func (c ThemeContribution) EffectiveSettingsID() string {
	if strings.TrimSpace(c.SettingsID) != "" {
		return c.SettingsID
	}
	if strings.TrimSpace(c.Label) != "" {
		return c.Label
	}
	return c.ID
}
