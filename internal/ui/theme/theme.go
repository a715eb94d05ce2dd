package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: ink, paper and a seal-red accent.
var (
	Primary   = lipgloss.Color("#C0392B") // Seal Red
	Secondary = lipgloss.Color("#2A9D8F") // Jade
	Accent    = lipgloss.Color("#E9C46A") // Gold
	Success   = lipgloss.Color("#52B788") // Green
	Error     = lipgloss.Color("#E76F51") // Vermilion
	Text      = lipgloss.Color("#F4F1EA") // Paper
	TextDim   = lipgloss.Color("#9A9A8E") // Faded ink
	BgDark    = lipgloss.Color("#14161A") // Ink
	BgCard    = lipgloss.Color("#22262C") // Inkstone
	Border    = lipgloss.Color("#3A3F47") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Glyph renders a headword on a flashcard.
	Glyph = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 3)

	// Label renders field names such as 注音 or 部首.
	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success)

	Pending = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(BgDark).
			Background(Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
