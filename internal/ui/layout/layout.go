package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"視窗太小\n\nThe flashcards need at least\n%d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// RenderHeader renders the application header bar. done and total are
// the completed and scheduled day counts shown on the right; compact widths
// shorten both ends.
func RenderHeader(title string, done, total int, width int) string {
	brand, progress := "  漢字 Hanzi", fmt.Sprintf("✓ %d/%d days", done, total)
	if IsCompactWidth(width) {
		brand, progress = "  漢字", fmt.Sprintf("✓ %d/%d", done, total)
	}

	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(progress)

	innerWidth := max(width-4, 0)
	leftGap := max((innerWidth-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(innerWidth-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar(content, width)
}

// RenderFooter renders the footer with key hints. Hints that do not fit
// the width are dropped from the end, except the last one, which is kept
// in place of the earliest dropped hint.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	room := max(width-6, 0)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, renderHint(h))
	}

	used, fit := 0, 0
	for i, p := range parts {
		w := lipgloss.Width(p)
		if i > 0 {
			w += len(sep)
		}
		if used+w > room {
			break
		}
		used += w
		fit++
	}
	if fit < len(parts) {
		last := parts[len(parts)-1]
		for fit > 0 && used+len(sep)+lipgloss.Width(last) > room {
			fit--
			used -= lipgloss.Width(parts[fit])
			if fit > 0 {
				used -= len(sep)
			}
		}
		parts = append(parts[:fit:fit], last)
	}

	return bar("  "+strings.Join(parts, sep), width)
}

func renderHint(h KeyHint) string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
		" " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
}

// bar draws the rounded card shared by the header and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := max(height-headerHeight-footerHeight, 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
