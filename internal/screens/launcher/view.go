package launcher

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizrush/internal/ui/theme"
)

const (
	titleFull    = "Q  U  I  Z    R  U  S  H"
	titleCompact = "QUIZRUSH"
	tagline      = "answer fast · five misses and it's over"
)

// buttonWidth is the fixed width of menu buttons.
const buttonWidth = 34

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	if compact {
		return center.Render(style.Render(titleCompact))
	}
	return center.Render(style.Render(titleFull) + "\n\n" + theme.Subtitle.Render(tagline))
}

func renderMenu(labels []string, selected, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		BorderForeground(theme.Accent)
	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact is used when bordered buttons would not fit.
func renderMenuCompact(labels []string, selected, cw int) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, theme.Unselected.Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
