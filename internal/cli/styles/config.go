package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathEntry is one labelled location shown by RenderPaths.
type PathEntry struct {
	Label string
	Path  string
}

// RenderPaths renders the directories and files the host uses.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Label))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "  %s %s  %s\n",
			iconStyle.Render(IconFolder),
			r.theme.Normal.Render(fmt.Sprintf("%-*s", width, e.Label)),
			r.theme.Subtle.Render(e.Path),
		)
	}
	return sb.String()
}

// RenderInitialized renders the result of writing a config file.
func (r *ConfigRenderer) RenderInitialized(path string, overwritten bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	verb := "Created"
	if overwritten {
		verb = "Reset"
	}
	return fmt.Sprintf(
		"\n  %s %s config %s\n",
		iconStyle.Render(IconCheck),
		verb,
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the refusal to overwrite an existing config.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Use --force to replace it with defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
