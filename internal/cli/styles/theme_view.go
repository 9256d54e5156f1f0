package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/domain/validation"
	"github.com/bnema/themehost/internal/theme"
)

// SummaryColorKeys are the workbench colours shown in a theme summary.
var SummaryColorKeys = []string{
	"editor.background",
	"editor.foreground",
	"editorCursor.foreground",
	"editorLineNumber.foreground",
	"activityBar.background",
	"sideBar.background",
	"statusBar.background",
	"statusBar.foreground",
	"focusBorder",
	"widget.border",
}

// ThemeRenderer renders loaded color themes.
type ThemeRenderer struct {
	theme *Theme
}

// NewThemeRenderer creates a new ThemeRenderer.
func NewThemeRenderer(t *Theme) *ThemeRenderer {
	return &ThemeRenderer{theme: t}
}

// RenderSummary renders the header and the summary swatches of d.
func (r *ThemeRenderer) RenderSummary(d *theme.Descriptor, fallback bool, suggestions []string) string {
	parts := []string{r.renderHeader(d, fallback)}
	if fallback && len(suggestions) > 0 {
		parts = append(parts, r.theme.WarningStyle.Render(
			fmt.Sprintf("  %s did you mean %s?", IconInfo, strings.Join(suggestions, ", "))))
	}
	parts = append(parts, "", r.renderSwatches(d.Colors(), SummaryColorKeys))
	return strings.Join(parts, "\n")
}

// RenderFull renders every colour and token rule of d.
func (r *ThemeRenderer) RenderFull(d *theme.Descriptor) string {
	colors := d.Colors()
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := []string{
		r.renderHeader(d, false),
		"",
		r.theme.Subtitle.Render(fmt.Sprintf("Colors (%d)", len(keys))),
		r.renderSwatches(colors, keys),
		"",
		r.theme.Subtitle.Render(fmt.Sprintf("Token rules (%d)", len(d.TokenRules()))),
		r.renderRules(d.TokenRules()),
	}
	return strings.Join(parts, "\n")
}

func (r *ThemeRenderer) renderHeader(d *theme.Descriptor, fallback bool) string {
	badge := r.theme.Badge.Render(d.Appearance.String())
	title := fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconPalette),
		r.theme.Title.Render(d.Label),
		badge,
	)
	if fallback {
		title += " " + r.theme.BadgeMuted.Render("fallback")
	}

	owner := d.ExtensionName
	if d.IsDefault() {
		owner = "built-in"
	}
	lines := []string{
		title,
		r.theme.Subtle.Render(fmt.Sprintf("  id %s", d.ID)),
		r.theme.Subtle.Render(fmt.Sprintf("  from %s", owner)),
	}
	if d.Location != "" {
		lines = append(lines, r.theme.Subtle.Render(fmt.Sprintf("  at %s", d.Location)))
	}
	if d.Description != "" {
		lines = append(lines, r.theme.Normal.Render("  "+d.Description))
	}
	return strings.Join(lines, "\n")
}

func (r *ThemeRenderer) renderSwatches(colors map[string]string, keys []string) string {
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	var lines []string
	for _, key := range keys {
		value, ok := colors[key]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s",
			Swatch(value),
			r.theme.Normal.Render(fmt.Sprintf("%-*s", width, key)),
			r.theme.Subtle.Render(value),
		))
	}
	if len(lines) == 0 {
		return r.theme.Subtle.Render("  no colors")
	}
	return strings.Join(lines, "\n")
}

func (r *ThemeRenderer) renderRules(rules []entity.TokenRule) string {
	if len(rules) == 0 {
		return r.theme.Subtle.Render("  no token rules")
	}

	var lines []string
	for _, rule := range rules {
		scope := strings.Join(rule.Scope, ", ")
		if scope == "" {
			scope = "(defaults)"
		}
		style := lipgloss.NewStyle()
		if rule.Settings.Foreground != "" {
			style = style.Foreground(lipgloss.Color(trimAlpha(rule.Settings.Foreground)))
		}
		if strings.Contains(rule.Settings.FontStyle, "italic") {
			style = style.Italic(true)
		}
		if strings.Contains(rule.Settings.FontStyle, "bold") {
			style = style.Bold(true)
		}
		if strings.Contains(rule.Settings.FontStyle, "underline") {
			style = style.Underline(true)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", r.theme.Subtle.Render(IconCursor), style.Render(scope)))
	}
	return strings.Join(lines, "\n")
}

// Swatch renders a small block filled with value and labelled in a
// readable contrast colour.
func Swatch(value string) string {
	fg := "#ffffff"
	if !validation.IsDarkColor(value) {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(trimAlpha(value))).
		Foreground(lipgloss.Color(fg)).
		Render(" Aa ")
}

func trimAlpha(value string) string {
	if len(value) == 9 {
		return value[:7]
	}
	return value
}

// ThemeJSON is the machine readable form of a loaded theme.
type ThemeJSON struct {
	ID                   string             `json:"id"`
	SettingsID           string             `json:"settingsId"`
	Label                string             `json:"label"`
	Appearance           string             `json:"appearance"`
	UITheme              string             `json:"uiTheme"`
	Extension            string             `json:"extension,omitempty"`
	Location             string             `json:"location,omitempty"`
	Fallback             bool               `json:"fallback,omitempty"`
	Suggestions          []string           `json:"suggestions,omitempty"`
	SemanticHighlighting bool               `json:"semanticHighlighting"`
	Colors               map[string]string  `json:"colors"`
	TokenColors          []entity.TokenRule `json:"tokenColors"`
}

// RenderJSON renders d as indented JSON.
func (*ThemeRenderer) RenderJSON(d *theme.Descriptor, fallback bool, suggestions []string) (string, error) {
	data, err := json.MarshalIndent(ThemeJSON{
		ID:                   d.ID,
		SettingsID:           d.SettingsID,
		Label:                d.Label,
		Appearance:           d.Appearance.String(),
		UITheme:              d.Appearance.UITheme(),
		Extension:            d.ExtensionName,
		Location:             d.Location,
		Fallback:             fallback,
		Suggestions:          suggestions,
		SemanticHighlighting: d.SemanticHighlighting(),
		Colors:               d.Colors(),
		TokenColors:          d.TokenRules(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal theme: %w", err)
	}
	return string(data), nil
}

// DiagnosticsRenderer renders contribution messages.
type DiagnosticsRenderer struct {
	theme *Theme
}

// NewDiagnosticsRenderer creates a new DiagnosticsRenderer.
func NewDiagnosticsRenderer(t *Theme) *DiagnosticsRenderer {
	return &DiagnosticsRenderer{theme: t}
}

// Render renders one line per message, or nothing when there are none.
func (r *DiagnosticsRenderer) Render(messages []contrib.Message) string {
	if len(messages) == 0 {
		return ""
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		icon, style := IconInfo, r.theme.Subtle
		switch m.Severity {
		case contrib.SeverityError:
			icon, style = IconX, r.theme.ErrorStyle
		case contrib.SeverityWarning:
			icon, style = IconWarning, r.theme.WarningStyle
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			style.Render(icon),
			r.theme.Normal.Render(m.Extension),
			r.theme.Subtle.Render(m.Text),
		))
	}
	return strings.Join(lines, "\n")
}
