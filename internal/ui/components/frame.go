package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

// ButtonWidth is the fixed width of framed menu buttons.
const ButtonWidth = 22

// ContentWidth returns the uniform inner width used for framed sections,
// so stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Frame border (2) + inner padding (4).
	return min(max(frameWidth-6, 20), 60)
}

// Frame wraps content in a double border centered in width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded box cw columns wide.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders a bordered button, highlighted when selected.
func Button(label string, selected bool) string {
	if selected {
		return theme.ButtonActive.Width(ButtonWidth).Align(lipgloss.Center).Render("▸ " + label)
	}
	return theme.ButtonInactive.Width(ButtonWidth).Align(lipgloss.Center).Render(label)
}

// Buttons stacks one Button per label, centered in cw columns. compact
// renders plain lines for small terminals.
func Buttons(labels []string, selected, cw int, compact bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case compact && i == selected:
			lines = append(lines, theme.Selected.Render(" ▸ "+label+" "))
		case compact:
			lines = append(lines, theme.Unselected.Render("   "+label))
		default:
			lines = append(lines, Button(label, i == selected))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
