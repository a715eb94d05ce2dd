package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/ui/theme"
)

// MultiChoice is a numbered option selector. The number keys pick an
// option directly; arrows move the cursor and enter picks it.
type MultiChoice struct {
	Options  []string
	Selected int

	// Chosen is the picked option index, or -1 while undecided.
	Chosen int

	// Answer is the correct option index once revealed, or -1.
	Answer int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1, Answer: -1}
}

// Update handles navigation. It reports whether an option was picked.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Chosen >= 0 {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.Chosen = m.Selected
			return m, true
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
			m.Chosen = n - 1
			return m, true
		}
	}
	return m, false
}

// Value returns the picked option, or "" when none was picked.
func (m MultiChoice) Value() string {
	if m.Chosen < 0 || m.Chosen >= len(m.Options) {
		return ""
	}
	return m.Options[m.Chosen]
}

// Reveal marks the option equal to answer as correct for rendering.
func (m *MultiChoice) Reveal(answer string) {
	for i, opt := range m.Options {
		if opt == answer {
			m.Answer = i
			return
		}
	}
}

// View renders the options, colouring the outcome once revealed.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && m.Chosen < 0 {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Answer >= 0 && i == m.Answer:
			style = theme.Correct
		case m.Chosen >= 0 && i == m.Chosen:
			style = theme.Incorrect
		case m.Chosen >= 0:
			style = theme.Pending
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
