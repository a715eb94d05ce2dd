package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hanzi/internal/quiz"
	sess "github.com/abhisek/hanzi/internal/session"
	"github.com/abhisek/hanzi/internal/ui/components"
	"github.com/abhisek/hanzi/internal/ui/theme"
)

// renderInfoLine renders the question counter and running score above a
// rule.
func (s *SessionScreen) renderInfoLine(width int) string {
	state := s.state
	q := state.Question()

	var typeName string
	if q != nil {
		typeName = q.Type.String()
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", state.Quiz.Date, typeName))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			state.Current+1,
			state.Total(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.Correct(),
		))

	line := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + infoRight
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	bar := components.NewProgressBar("", state.Current, state.Total(), false, max(width-4, 4))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")
	return b.String()
}

// renderPrompt renders the question text centered.
func renderPrompt(q *quiz.Question, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
}

// renderAnswerArea renders the options or the text input.
func (s *SessionScreen) renderAnswerArea(width int) string {
	if s.state.Mode == sess.ModeChoice {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View())
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
}

// renderQuestionView renders the active question.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	q := s.state.Question()
	if q == nil {
		return renderSaving(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString(renderPrompt(q, width))
	b.WriteString("\n\n")
	b.WriteString(s.renderAnswerArea(width))
	return b.String()
}

// renderFeedback renders the verdict for the last answer under the
// revealed question.
func (s *SessionScreen) renderFeedback(width, height int) string {
	q := s.state.Question()
	if q == nil {
		return renderSaving(width, height)
	}
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString(renderPrompt(q, width))
	b.WriteString("\n\n")
	b.WriteString(s.renderAnswerArea(width))
	b.WriteString("\n\n")

	if s.state.LastCorrect {
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Correct!"))
	} else {
		b.WriteString(center.Foreground(theme.Error).Bold(true).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render("Correct answer: " + q.Answer))
	}
	b.WriteString("\n\n")

	if p := q.Phrase; p != nil {
		gloss := p.Word
		if p.LocalGloss != "" {
			gloss += "：" + p.LocalGloss
		}
		if p.ForeignGloss != "" {
			gloss += " (" + p.ForeignGloss + ")"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 70)).Foreground(theme.Text).Render(gloss)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.TextDim).Render("Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int, state *sess.State) string {
	remaining := state.Total() - state.Answered()
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("End this quiz?"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%d unanswered question(s) will count as wrong.", remaining)),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[Y] End quiz    [N] Keep going"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderSaving renders the placeholder shown while the result is stored.
func renderSaving(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving your score..."))
}
