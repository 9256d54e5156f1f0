package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAppearance is returned when a ui theme or appearance name is not recognised.
var ErrUnknownAppearance = errors.New("unknown appearance")

// Appearance is the coarse visual category a theme belongs to.
type Appearance int

const (
	AppearanceLight Appearance = iota
	AppearanceDark
	AppearanceHighContrastDark
	AppearanceHighContrastLight
)

// UI theme identifiers used in theme contributions.
const (
	UIThemeLight             = "vs"
	UIThemeDark              = "vs-dark"
	UIThemeHighContrastDark  = "hc-black"
	UIThemeHighContrastLight = "hc-light"
)

// UIThemes lists the accepted uiTheme values in declaration order.
func UIThemes() []string {
	return []string{UIThemeLight, UIThemeDark, UIThemeHighContrastDark, UIThemeHighContrastLight}
}

// ParseUITheme maps a contribution uiTheme value to an Appearance.
func ParseUITheme(uiTheme string) (Appearance, error) {
	switch uiTheme {
	case UIThemeLight:
		return AppearanceLight, nil
	case UIThemeDark:
		return AppearanceDark, nil
	case UIThemeHighContrastDark:
		return AppearanceHighContrastDark, nil
	case UIThemeHighContrastLight:
		return AppearanceHighContrastLight, nil
	default:
		return AppearanceLight, fmt.Errorf("%w: uiTheme %q", ErrUnknownAppearance, uiTheme)
	}
}

// ParseAppearance accepts either an appearance name ("light", "dark",
// "hc-dark", "hc-light") or a uiTheme value.
func ParseAppearance(value string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "light", UIThemeLight:
		return AppearanceLight, nil
	case "dark", UIThemeDark:
		return AppearanceDark, nil
	case "hc-dark", "high-contrast", "high-contrast-dark", UIThemeHighContrastDark:
		return AppearanceHighContrastDark, nil
	case "high-contrast-light", UIThemeHighContrastLight:
		return AppearanceHighContrastLight, nil
	default:
		return AppearanceLight, fmt.Errorf("%w: %q", ErrUnknownAppearance, value)
	}
}

// UITheme returns the contribution uiTheme value for the appearance.
func (a Appearance) UITheme() string {
	switch a {
	case AppearanceDark:
		return UIThemeDark
	case AppearanceHighContrastDark:
		return UIThemeHighContrastDark
	case AppearanceHighContrastLight:
		return UIThemeHighContrastLight
	default:
		return UIThemeLight
	}
}

func (a Appearance) String() string {
	switch a {
	case AppearanceDark:
		return "dark"
	case AppearanceHighContrastDark:
		return "hc-dark"
	case AppearanceHighContrastLight:
		return "hc-light"
	default:
		return "light"
	}
}

// IsDark reports whether the appearance has a dark background.
func (a Appearance) IsDark() bool {
	return a == AppearanceDark || a == AppearanceHighContrastDark
}

// IsHighContrast reports whether the appearance is a high contrast variant.
func (a Appearance) IsHighContrast() bool {
	return a == AppearanceHighContrastDark || a == AppearanceHighContrastLight
}
