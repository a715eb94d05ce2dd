package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

// SealVariant selects which seal stamp to display.
type SealVariant int

const (
	SealPending SealVariant = iota // Today's cards not done yet
	SealDone                       // Today's cards done
)

const sealPending = `╔═════╗
║ 今日 ║
║ 學習 ║
╚═════╝`

const sealDone = `╔═════╗
║ 今日 ║
║ 完成 ║
╚═════╝`

// RenderSeal returns the styled seal for the variant.
func RenderSeal(v SealVariant) string {
	if v == SealDone {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(sealDone)
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(sealPending)
}
