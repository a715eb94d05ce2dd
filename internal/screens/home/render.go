package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

const titleFull = `█ █ ▄▀▄ █▄ █ ▀█ █
█▀█ █▀█ █ ▀█ █▄ █`

const titleCompact = "漢 字 · H A N Z I"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar renders the study progress in a bordered box matching
// content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	todayStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	today := dimStyle.Render("no schedule")
	if st.Today != "" {
		mark := "○"
		if st.TodayDone {
			mark = "●"
		}
		today = todayStyle.Render(fmt.Sprintf("%s %s", mark, st.Today))
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s %s",
			doneStyle.Render(fmt.Sprintf("✓%d/%d", st.Done, st.Total)),
			today)
	} else {
		line = fmt.Sprintf("%s  %s",
			doneStyle.Render(fmt.Sprintf("✓ %d/%d DAYS DONE", st.Done, st.Total)),
			today)
	}
	if st.Err != nil {
		line = lipgloss.NewStyle().Foreground(theme.Error).Render("stats unavailable: " + st.Err.Error())
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderSealBox renders the seal centered at content width.
func renderSealBox(v SealVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderSeal(v))
}
