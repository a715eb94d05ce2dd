package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

const bannerArt = `█ █ ▄▀▄ █▄ █ ▀█ █
█▀█ █▀█ █ ▀█ █▄ █`

const bannerCompact = "H A N Z I"

// RenderBanner returns the HANZI banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
