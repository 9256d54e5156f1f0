package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/theme"
)

// NewStyledTable creates a themed static table.
func NewStyledTable(t *Theme, headers ...string) *table.Table {
	header := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	muted := cell.Foreground(t.Muted)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return cell.Bold(true)
			case row%2 == 1:
				return muted
			default:
				return cell
			}
		})
}

// ThemeListRenderer renders registered themes.
type ThemeListRenderer struct {
	theme *Theme
}

// NewThemeListRenderer creates a new ThemeListRenderer.
func NewThemeListRenderer(t *Theme) *ThemeListRenderer {
	return &ThemeListRenderer{theme: t}
}

// Render renders one row per descriptor in registry order.
func (r *ThemeListRenderer) Render(themes []*theme.Descriptor) string {
	if len(themes) == 0 {
		return r.theme.Subtle.Render("No themes registered")
	}

	tbl := NewStyledTable(r.theme, "Settings ID", "Appearance", "Extension", "State")
	for _, d := range themes {
		tbl.Row(d.SettingsID, d.Appearance.String(), d.ExtensionName, d.State().String())
	}
	return tbl.Render()
}

// HistoryRenderer renders recorded resolutions.
type HistoryRenderer struct {
	theme *Theme
}

// NewHistoryRenderer creates a new HistoryRenderer.
func NewHistoryRenderer(t *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: t}
}

// Render renders resolutions most recent first.
func (r *HistoryRenderer) Render(entries []*entity.ThemeResolution, now time.Time) string {
	if len(entries) == 0 {
		return r.theme.Subtle.Render("No resolutions recorded")
	}

	tbl := NewStyledTable(r.theme, "#", "When", "Configured", "Resolved", "Appearance", "Fallback")
	for _, e := range entries {
		fallback := ""
		if e.Fallback {
			fallback = "yes"
		}
		tbl.Row(
			strconv.FormatInt(e.ID, 10),
			relativeTime(e.ResolvedAt, now),
			e.ConfiguredID,
			e.SettingsID,
			e.Appearance.String(),
			fallback,
		)
	}
	return tbl.Render()
}

func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	case d < 7*24*time.Hour:
		return strconv.Itoa(int(d.Hours()/24)) + "d ago"
	default:
		return t.Format("2006-01-02")
	}
}
